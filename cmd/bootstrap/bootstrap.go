package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetify/config"
	deliveryHttp "vetify/internal/delivery/http"
	"vetify/internal/delivery/http/handler"
	"vetify/internal/delivery/http/middleware"
	"vetify/internal/infrastructure/cache"
	"vetify/internal/infrastructure/database"
	"vetify/internal/repository"
	"vetify/internal/usecase"
	"vetify/pkg/render"
	"vetify/pkg/session"
	"vetify/pkg/validator"
	"vetify/web"

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

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database and seed fixed records
	db, err := database.NewSQLiteConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.SeedVeterinarians(db); err != nil {
		return nil, fmt.Errorf("failed to seed veterinarians: %w", err)
	}
	if err := database.SeedAdmin(db, cfg.Seed); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}
	app.DB = db
	logrus.Info("Database ready")

	// Initialize Redis (session storage)
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	log := logrus.StandardLogger()

	// Initialize session manager
	sessions := session.NewManager(redisClient, cfg.Session.TTL)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize template engine
	renderEngine, err := render.New(web.Templates, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository()
	petRepo := repository.NewPetRepository()
	vetRepo := repository.NewVeterinarianRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	userRepo := repository.NewUserRepository()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo)
	directoryUsecase := usecase.NewDirectoryUsecase(db, log, ownerRepo, petRepo, vetRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, sessions, customValidator, renderEngine)
	dashboardHandler := handler.NewDashboardHandler(directoryUsecase, appointmentUsecase, renderEngine)
	patientHandler := handler.NewPatientHandler(directoryUsecase, customValidator, renderEngine)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, directoryUsecase, customValidator, renderEngine)
	vetHandler := handler.NewVetHandler(directoryUsecase, renderEngine)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessions, log)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, dashboardHandler, patientHandler, appointmentHandler, vetHandler, sessionMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
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

	// Create shutdown context with timeout
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
