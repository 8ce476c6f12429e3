package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"facility-booking/config"
	deliveryHttp "facility-booking/internal/delivery/http"
	"facility-booking/internal/delivery/http/handler"
	"facility-booking/internal/delivery/http/middleware"
	"facility-booking/internal/domain/entity"
	"facility-booking/internal/infrastructure/cache"
	"facility-booking/internal/infrastructure/database"
	"facility-booking/internal/repository"
	"facility-booking/internal/service"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/jwt"
	"facility-booking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App)
	logrus.Info("Configuration loaded successfully")

	// Audit trail database is optional
	if cfg.DB.Enabled() {
		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Timezone)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		logrus.Info("Database connected successfully")
	} else {
		logrus.Info("DB_HOST not set, booking audit trail goes to the log only")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, app.DB, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// clock returns the wall clock in the configured timezone. "Today" and slot
// start times are evaluated in it.
func clock(timezone string) (func() time.Time, error) {
	if timezone == "" {
		return time.Now, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", timezone, err)
	}
	return func() time.Time { return time.Now().In(loc) }, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	now, err := clock(cfg.App.Timezone)
	if err != nil {
		return nil, err
	}

	catalog := entity.NewCatalog(cfg.Booking.Facilities, cfg.Booking.Slots)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()
	if err := customValidator.RegisterOneOf("facility", catalog.Facilities); err != nil {
		return nil, fmt.Errorf("failed to register facility validation: %w", err)
	}
	if err := customValidator.RegisterOneOf("slot", catalog.Slots); err != nil {
		return nil, fmt.Errorf("failed to register slot validation: %w", err)
	}

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	publisher := service.NewRedisBookingEventPublisher(redisClient, cfg.Booking.EventChannel, log)
	sessionStore := service.NewRedisSessionStore(redisClient)

	// Initialize usecases
	bookingUsecase := usecase.NewBookingUsecase(log, bookingRepo, catalog, auditService, publisher, usecase.BookingOptions{
		AdminEmail:      cfg.Booking.AdminEmail,
		DefaultPageSize: cfg.Booking.PageSize,
		SubmitLatency:   cfg.Booking.SubmitLatency,
		Now:             now,
	})
	sessionUsecase := usecase.NewSessionUsecase(log, jwtService, sessionStore)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo, bookingRepo, cfg.Booking.AdminEmail)

	// Initialize handlers
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	sessionHandler := handler.NewSessionHandler(sessionUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(jwtService, sessionStore, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(bookingHandler, sessionHandler, auditLogHandler, sessionMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// In-flight submissions finish their latency wait before we exit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
