package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/utils"
)

// JWTAuthAdminMiddleware must run after JWTAuthUserMiddleware and admits admin sessions only.
func JWTAuthAdminMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
			return
		}
		if !session.IsAdmin() {
			logger.Warn("Non-admin access to admin API", zap.String("userId", session.UserID), zap.String("path", c.FullPath()))
			utils.JSONError(c, http.StatusForbidden, "Admin access required", "")
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
