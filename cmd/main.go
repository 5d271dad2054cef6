package main

import (
	"os"
	"os/signal"
	"syscall"

	configs "github.com/brevetti-digital/backend/config"
	"github.com/brevetti-digital/backend/internal/constants"
	"github.com/brevetti-digital/backend/internal/handler"
	"github.com/brevetti-digital/backend/internal/middleware"
	"github.com/brevetti-digital/backend/internal/repository"
	"github.com/brevetti-digital/backend/internal/router"
	"github.com/brevetti-digital/backend/internal/service"
	"github.com/brevetti-digital/backend/pkg/database"
	"github.com/brevetti-digital/backend/pkg/logger"
	"github.com/brevetti-digital/backend/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
		zap.String("version", constants.AppVersion),
	)

	if config.App.Environment == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(config)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	if err := database.Seed(db); err != nil {
		// Seed data may already exist; the server can still start
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
	} else {
		logger.GetLogger().Info("Database seeded successfully")
	}

	// Redis is optional; statistics fall back to an in-process cache
	var redisClient *redis.Client
	if config.Redis.Enabled {
		redisClient, err = redis.NewClient(config)
		if err != nil {
			logger.GetLogger().Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
	} else {
		logger.GetLogger().Info("Redis disabled, using in-process stats cache")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	patentRepo := repository.NewPatentRepository(db)
	holderRepo := repository.NewHolderRepository(db)

	// Services
	jwtService := service.NewJWTService(config.JWT.Secret, config.JWT.ExpirationTime)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	statsCache := service.NewStatsCache(redisClient, config.Redis.StatsTTL)
	patentService := service.NewPatentService(patentRepo, holderRepo, statsCache)
	holderService := service.NewHolderService(holderRepo, statsCache)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	patentHandler := handler.NewPatentHandler(patentService)
	holderHandler := handler.NewHolderHandler(holderService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	jwtMiddleware := middleware.NewJWTMiddleware(jwtService, userRepo)

	r := router.NewRouter(
		authHandler,
		userHandler,
		patentHandler,
		holderHandler,
		healthHandler,
		jwtMiddleware,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
