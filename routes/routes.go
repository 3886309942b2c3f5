package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"salonbook/handlers"
	"salonbook/middleware"
)

// RegisterAuthRoutes registers sign up, sign in and sign out.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)
		api.POST("/logout", auth, hb.User.LogoutHandler)
	}
}

// RegisterCatalogRoutes registers the public catalogue.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.Catalog.ListServicesHandler)
		api.GET("/services/:id", hb.Catalog.GetServiceHandler)
		api.GET("/products", hb.Catalog.ListProductsHandler)
		api.GET("/staff", hb.Catalog.ListStaffHandler)
	}
	r.GET("/api/legal", hb.Admin.LegalHandler)
}

// RegisterBookingRoutes sets up slots, cart, checkout, payments and appointments.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api", auth)
	{
		api.GET("/booking/slots", hb.Booking.SlotsHandler)

		api.GET("/cart", hb.Booking.GetCartHandler)
		api.DELETE("/cart", hb.Booking.ResetCartHandler)
		api.POST("/cart/services", hb.Booking.AddCartServiceHandler)
		api.DELETE("/cart/services/:id", hb.Booking.RemoveCartServiceHandler)
		api.POST("/cart/products", hb.Booking.AddCartProductHandler)
		api.DELETE("/cart/products/:id", hb.Booking.RemoveCartProductHandler)
		api.PUT("/cart/schedule", hb.Booking.SetCartScheduleHandler)

		api.POST("/checkout/quote", hb.Booking.QuoteHandler)
		api.POST("/checkout", hb.Booking.CheckoutHandler)
		api.POST("/payments/intent", hb.Booking.CreatePaymentIntentHandler)

		api.GET("/appointments", hb.Booking.ListAppointmentsHandler)
		api.POST("/appointments/:id/cancel", hb.Booking.CancelAppointmentHandler)
		api.POST("/appointments/:id/confirm-payment", hb.Booking.ConfirmPaymentHandler)
	}
}

// RegisterAccountRoutes registers loyalty and profile endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api", auth)
	{
		api.GET("/loyalty", hb.Loyalty.SummaryHandler)
		api.GET("/loyalty/history", hb.Loyalty.HistoryHandler)
		api.POST("/loyalty/redeem", hb.Loyalty.RedeemHandler)

		api.GET("/profile", hb.User.GetProfileHandler)
		api.PATCH("/profile", hb.User.UpdateProfileHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc, logger *zap.Logger) {
	adminGroup := r.Group("/api/admin", auth, middleware.JWTAuthAdminMiddleware(logger))
	{
		adminGroup.GET("/calendar", hb.Admin.CalendarHandler)
		adminGroup.GET("/appointments", hb.Admin.ListAppointmentsHandler)
		adminGroup.PATCH("/appointments/:id/status", hb.Admin.UpdateStatusHandler)

		adminGroup.GET("/customers/:userId/notes", hb.Admin.ListNotesHandler)
		adminGroup.POST("/customers/:userId/notes", hb.Admin.AddNoteHandler)

		adminGroup.GET("/services", hb.Admin.ListServicesHandler)
		adminGroup.POST("/services", hb.Admin.CreateServiceHandler)
		adminGroup.PUT("/services/:id", hb.Admin.UpdateServiceHandler)
		adminGroup.PATCH("/services/:id/active", hb.Admin.SetServiceActiveHandler)

		adminGroup.GET("/staff/:staffId/schedule", hb.Admin.GetScheduleHandler)
		adminGroup.PUT("/staff/:staffId/schedule", hb.Admin.PutScheduleHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer, logger *zap.Logger) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.Use(limiter.Middleware(logger))
	auth := middleware.JWTAuthUserMiddleware(hb.Users, logger)

	RegisterAuthRoutes(r, hb, auth)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb, auth)
	RegisterAccountRoutes(r, hb, auth)
	RegisterAdminRoutes(r, hb, auth, logger)
}
