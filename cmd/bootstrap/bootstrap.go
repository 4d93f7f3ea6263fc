package bootstrap

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-product-catalog/config"
	deliveryHttp "go-product-catalog/internal/delivery/http"
	"go-product-catalog/internal/delivery/http/handler"
	"go-product-catalog/internal/delivery/http/middleware"
	"go-product-catalog/internal/delivery/http/view"
	"go-product-catalog/internal/infrastructure/cache"
	"go-product-catalog/internal/infrastructure/database"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/screen"
	"go-product-catalog/internal/service"
	"go-product-catalog/internal/usecase"
	"go-product-catalog/pkg/jwt"
	"go-product-catalog/pkg/validator"

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

	if cfg.App.Env != "production" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if cfg.Session.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		cfg.Session.Secret = secret
		logrus.Warn("SESSION_SECRET is not set; sessions will not survive a restart")
	}

	// Apply schema migrations
	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(database.URL(cfg.DB)); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		app.Close()
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

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	log := logrus.StandardLogger()

	// Initialize session token service
	tokenService := jwt.NewSessionTokenService(cfg.Session)

	// Initialize validator
	customValidator := validator.NewValidator()
	drafts := screen.NewDraftValidator(customValidator)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.Session.TTL)

	// Initialize services
	sessionLockService := service.NewSessionLockService(redisClient, log)

	// Initialize usecases
	productUsecase := usecase.NewProductUsecase(log, productRepo)
	catalogScreenUsecase := usecase.NewCatalogScreenUsecase(log, screen.NewReducer(drafts), productUsecase, sessionRepo, sessionLockService)

	// Initialize views
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize handlers
	productHandler := handler.NewProductHandler(productUsecase, customValidator, drafts)
	catalogScreenHandler := handler.NewCatalogScreenHandler(catalogScreenUsecase, renderer, log)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(tokenService, log, cfg.App.Env == "production")
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(productHandler, catalogScreenHandler, sessionMiddleware, loggingMiddleware, corsMiddleware)
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
