package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"taskhive_backend/database"
	"taskhive_backend/internal/config"
	"taskhive_backend/internal/email"
	"taskhive_backend/internal/handlers"
	"taskhive_backend/internal/logger"
	"taskhive_backend/internal/middleware"
	"taskhive_backend/internal/queue"
	"taskhive_backend/internal/repositories"
	"taskhive_backend/internal/routes"
	"taskhive_backend/internal/services"
	"taskhive_backend/internal/validator"
	"taskhive_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedCategories(gormDB); err != nil {
		logger.Fatal("Category seeding failed", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Redis unavailable, email notifications disabled", "error", err)
		redisClient = nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ginRouter := SetupRouter(cfg, gormDB, redisClient, ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and background workers
// and returns the configured engine. workerCtx bounds the worker goroutines;
// pass a cancelled context to skip starting them.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, workerCtx context.Context) *gin.Engine {
	userRepo := repositories.NewUserRepository(gormDB)
	helperRepo := repositories.NewHelperRepository(gormDB)
	taskRepo := repositories.NewTaskRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)

	var mailQueue queue.EmailProducer
	var redisQueue *queue.RedisEmailQueue
	if redisClient != nil {
		redisQueue = queue.NewRedisEmailQueue(redisClient)
		mailQueue = redisQueue
	}

	taskService := services.NewTaskService(taskRepo, helperRepo, userRepo, categoryRepo)
	userService := services.NewUserService(userRepo, taskRepo, taskService, mailQueue)
	helperService := services.NewHelperService(helperRepo, taskRepo, mailQueue)
	reviewService := services.NewReviewService(reviewRepo, userRepo, helperRepo, taskRepo)
	authService := services.NewAuthService(userRepo, helperRepo, refreshTokenRepo)

	if workerCtx.Err() == nil {
		if redisQueue != nil {
			sender := email.NewSMTPSender(cfg)
			workers.NewEmailWorker(redisQueue, sender).Start(workerCtx)
		}
		workers.NewTokenWorker(refreshTokenRepo).Start(workerCtx)
	}

	v := validator.New()
	base := handlers.NewBaseHandler(v)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(base, authService),
		UserHandler:   handlers.NewUserHandler(base, userService),
		HelperHandler: handlers.NewHelperHandler(base, helperService),
		TaskHandler:   handlers.NewTaskHandler(base, taskService),
		ReviewHandler: handlers.NewReviewHandler(base, reviewService),
	}

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(gormDB))

	return router
}
