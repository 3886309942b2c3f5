package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/services/user"
	"salonbook/utils"
)

// HandlerBundle groups all endpoint handlers into one struct for route registration.
type HandlerBundle struct {
	// Users backs the auth middleware.
	Users user.UserService
	// Health is nil in demo mode, where there are no external dependencies.
	Health *utils.HealthMonitor

	User    *UserHandler
	Catalog *CatalogHandler
	Booking *BookingHandler
	Loyalty *LoyaltyHandler
	Admin   *AdminHandler
}

// HealthHandler reports the last dependency health snapshot.
func (hb *HandlerBundle) HealthHandler(c *gin.Context) {
	if hb.Health == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "mode": "demo", "message": "Hair Style booking API"})
		return
	}
	status := hb.Health.Status()
	if !status.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "dependencies": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": status})
}
