package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tekfix_jobboard/database"
	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/config"
	"tekfix_jobboard/internal/email"
	"tekfix_jobboard/internal/handlers"
	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/middleware"
	"tekfix_jobboard/internal/repositories"
	"tekfix_jobboard/internal/routes"
	"tekfix_jobboard/internal/services"
	"tekfix_jobboard/internal/validator"
	"tekfix_jobboard/internal/workers"
	"tekfix_jobboard/pkg/apperrors"
	"tekfix_jobboard/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	shutdownTimeout      = 10 * time.Second
	limiterSweepInterval = 5 * time.Minute
)

// App - собранное приложение
type App struct {
	Config    *config.Config
	Router    *gin.Engine
	Services  *services.ServiceContainer
	WSManager *ws.WebSocketManager

	db *gorm.DB
}

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to build application", "error", err)
	}
	defer application.Close()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           application.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server exited")
}

// New собирает репозитории, сервисы и роутер. Хаб событий живет до отмены ctx.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	wsManager := ws.NewWebSocketManager()
	go wsManager.Run(ctx)

	container, db, err := initializeServices(cfg, wsManager)
	if err != nil {
		return nil, err
	}

	limiter := newAuthLimiter(cfg)
	if limiter != nil {
		workers.NewLimiterWorker(limiter, limiterSweepInterval).Start(ctx)
	}

	return &App{
		Config:    cfg,
		Router:    SetupRouter(cfg, container, wsManager, limiter),
		Services:  container,
		WSManager: wsManager,
		db:        db,
	}, nil
}

// Close закрывает соединение с базой, если оно было открыто
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewLocalServices - сервисы без HTTP поверх того же хранилища.
// CLI с флагом --local работает через них напрямую.
func NewLocalServices(cfg *config.Config) (*services.ServiceContainer, func() error, error) {
	container, db, err := initializeServices(cfg, nil)
	if err != nil {
		return nil, nil, err
	}
	closer := (&App{db: db}).Close
	return container, closer, nil
}

// SetupRouter собирает gin-роутер. limiter == nil отключает лимит на вход.
func SetupRouter(cfg *config.Config, container *services.ServiceContainer, wsManager *ws.WebSocketManager, limiter *middleware.IPRateLimiter) *gin.Engine {
	appHandlers := initializeHandlers(container, limiter)
	wsHandler := ws.NewWebSocketHandler(wsManager)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)
	return ginRouter
}

func initializeRepositories(cfg *config.Config) (repositories.UserRepository, repositories.JobRepository, *gorm.DB, error) {
	if cfg.Database.Driver == "memory" {
		userRepo, jobRepo := repositories.NewSeededMemoryRepositories(time.Now())
		logger.Info("Using in-memory storage with demo data")
		return userRepo, jobRepo, nil, nil
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, nil, err
	}
	if cfg.Database.Seed {
		if err := database.SeedDemoData(db, time.Now()); err != nil {
			return nil, nil, nil, err
		}
	}

	return repositories.NewUserRepository(db), repositories.NewJobRepository(db), db, nil
}

func initializeServices(cfg *config.Config, publisher services.JobEventPublisher) (*services.ServiceContainer, *gorm.DB, error) {
	userRepo, jobRepo, db, err := initializeRepositories(cfg)
	if err != nil {
		return nil, nil, err
	}

	codec, err := auth.NewTokenCodec(cfg.Auth.TokenFormat, cfg.Auth.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, nil, err
	}

	password, err := auth.NewSentinelPassword(cfg.Auth.DemoPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	emailService, err := email.NewProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	container := services.NewServiceContainer(services.Dependencies{
		UserRepo:  userRepo,
		JobRepo:   jobRepo,
		Codec:     codec,
		Password:  password,
		Email:     emailService,
		Publisher: publisher,
		Latency: services.Latency{
			Auth:  cfg.AuthLatency(),
			Users: cfg.UsersLatency(),
			Jobs:  cfg.JobsLatency(),
		},
	})
	return container, db, nil
}

func newAuthLimiter(cfg *config.Config) *middleware.IPRateLimiter {
	if cfg.RateLimit.AuthPerMinute <= 0 {
		return nil
	}
	return middleware.NewIPRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.Burst)
}

func initializeHandlers(container *services.ServiceContainer, limiter *middleware.IPRateLimiter) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, container.TokenCodec)

	return &handlers.AppHandlers{
		AuthHandler:  handlers.NewAuthHandler(baseHandler, container.AuthService, limiter),
		JobHandler:   handlers.NewJobHandler(baseHandler, container.JobService),
		UserHandler:  handlers.NewUserHandler(baseHandler, container.AuthService),
		AdminHandler: handlers.NewAdminHandler(baseHandler, container.AdminService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	switch cfg.Server.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
