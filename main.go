package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	"salonbook/database/repository"
	"salonbook/handlers"
	"salonbook/metrics"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/admin"
	"salonbook/services/booking"
	"salonbook/services/catalog"
	"salonbook/services/loyalty"
	"salonbook/services/notification"
	"salonbook/services/payment"
	"salonbook/services/tasks"
	"salonbook/services/user"
	"salonbook/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := utils.RegisterValidators(); err != nil {
		logger.Fatal("main: failed to register validators", zap.Error(err))
	}
	loc := cfg.Location()

	// Mongo is optional outside production: the in-memory demo catalogue is used instead.
	mongoClient, repos := openRepositories(cfg, loc, logger)

	cacheClient := mustRedis(cfg, cfg.RedisCacheDB, logger)
	authClient := mustRedis(cfg, cfg.RedisAuthDB, logger)
	defer cacheClient.Close()
	defer authClient.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	bookingMetrics := metrics.NewBookingMetrics(registry)

	// Background tasks share the Redis server on their own DB.
	queueOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
	queueClient := asynq.NewClient(queueOpt)
	defer queueClient.Close()
	scheduler := tasks.NewAsynqScheduler(queueClient, loc, cfg.ReminderLead, cfg.PaymentWindow, logger)

	// services.
	email := notification.NewEmailSender(notification.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger)
	gateway := newGateway(cfg, logger)
	loyaltySvc := loyalty.NewService(repos.Profiles, repos.Loyalty, bookingMetrics, logger)

	userService := &user.DefaultUserService{
		Repo:      repos.Profiles,
		AuthCache: authClient,
		Tokens:    utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		Logger:    logger,
	}
	catalogService := &catalog.DefaultCatalogService{Repo: repos.Catalog, Logger: logger}
	cartService := &booking.RedisCartService{Cache: cacheClient, Catalog: repos.Catalog, TTL: cfg.CartTTL, Logger: logger}
	availabilityService := &booking.DefaultAvailabilityService{
		Catalog:     repos.Catalog,
		Schedules:   repos.Schedules,
		StepMinutes: cfg.SlotIntervalMinutes,
		Metrics:     bookingMetrics,
		Logger:      logger,
	}
	checkoutService := &booking.DefaultCheckoutService{
		Catalog:            repos.Catalog,
		Schedules:          repos.Schedules,
		Appointments:       repos.Appointments,
		Profiles:           repos.Profiles,
		Loyalty:            loyaltySvc,
		Payments:           gateway,
		Cart:               cartService,
		Email:              email,
		Locker:             &booking.SlotLocker{Cache: cacheClient, TTL: cfg.CheckoutLockTTL, Logger: logger},
		Tasks:              scheduler,
		StepMinutes:        cfg.SlotIntervalMinutes,
		OnlineDiscountRate: cfg.OnlineDiscountRate,
		Metrics:            bookingMetrics,
		Logger:             logger,
	}
	appointmentService := &booking.DefaultAppointmentService{
		Appointments: repos.Appointments,
		Payments:     gateway,
		Loyalty:      loyaltySvc,
		Metrics:      bookingMetrics,
		Logger:       logger,
	}
	adminService := &admin.DefaultAdminService{
		Appointments: repos.Appointments,
		Notes:        repos.Notes,
		Profiles:     repos.Profiles,
		Schedules:    repos.Schedules,
		Catalog:      repos.Catalog,
		Logger:       logger,
	}

	worker := &cron.Worker{
		Appointments: repos.Appointments,
		Profiles:     repos.Profiles,
		Catalog:      repos.Catalog,
		Loyalty:      loyaltySvc,
		Email:        email,
		Payments:     gateway,
		Logger:       logger,
	}
	taskServer, err := cron.StartWorker(queueOpt, worker, logger)
	if err != nil {
		logger.Fatal("main: failed to start task worker", zap.Error(err))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var health *utils.HealthMonitor
	if mongoClient != nil {
		health = utils.NewHealthMonitor(mongoClient, logger, cacheClient, authClient)
		health.Start(ctx, 30*time.Second)
	}

	limiter := middleware.NewRateLimiter(cfg.MaxRequestsPerMin)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				limiter.Cleanup()
			}
		}
	}()

	handlerBundle := &handlers.HandlerBundle{
		Users:   userService,
		Health:  health,
		User:    handlers.NewUserHandler(userService, logger),
		Catalog: handlers.NewCatalogHandler(catalogService, logger),
		Booking: &handlers.BookingHandler{
			Availability: availabilityService,
			Cart:         cartService,
			Checkout:     checkoutService,
			Appointments: appointmentService,
			Payments:     gateway,
			Logger:       logger,
		},
		Loyalty: &handlers.LoyaltyHandler{Loyalty: loyaltySvc, Logger: logger},
		Admin:   handlers.NewAdminHandler(adminService, catalogService, logger),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	routes.RegisterRoutes(router, handlerBundle, limiter, registry, logger)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	taskServer.Shutdown()
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
		}
	}

	logger.Info("main: server stopped gracefully")
}

func openRepositories(cfg *config.Config, loc *time.Location, logger *zap.Logger) (*mongo.Client, *repository.Repositories) {
	client, db, err := database.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
	if err == nil {
		logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))
		return client, repository.NewMongoRepositories(db, loc, logger)
	}
	if cfg.IsProduction() {
		logger.Fatal("main: MongoDB is required in production", zap.Error(err))
	}
	logger.Warn("MongoDB unavailable, serving the in-memory demo catalogue", zap.Error(err))
	return nil, repository.NewDemoRepositories(loc)
}

func mustRedis(cfg *config.Config, db int, logger *zap.Logger) *redis.Client {
	client, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, db)
	if err != nil {
		logger.Fatal("main: Redis is required", zap.Int("db", db), zap.Error(err))
	}
	return client
}

// newGateway falls back to the in-process gateway when Stripe is not configured outside production.
func newGateway(cfg *config.Config, logger *zap.Logger) payment.Gateway {
	if cfg.StripeSecretKey == "" && !cfg.IsProduction() {
		logger.Warn("STRIPE_SECRET_KEY not set, online payments are simulated")
		return payment.NewFakeGateway()
	}
	return payment.NewStripeGateway(cfg.StripeSecretKey, cfg.Currency, logger)
}
