package main

import (
	"net/http"
	"time"

	"healthmate/database"
	"healthmate/internal/cache"
	"healthmate/internal/config"
	"healthmate/internal/controllers"
	"healthmate/internal/logger"
	"healthmate/internal/middleware"
	"healthmate/internal/openai"
	"healthmate/internal/repository"
	"healthmate/internal/services"
	"healthmate/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load(log)

	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db, log); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// The stats cache is optional; the service works without redis, just
	// without cached dashboards.
	var statsCache controllers.StatsCache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, dashboard stats will not be cached", zap.Error(err))
	} else {
		statsCache = redisClient
		defer redisClient.Close()
	}

	// Constructed once, reused by every request handler.
	openaiClient, err := openai.NewClient(cfg.OpenAI, log)
	if err != nil {
		log.Fatal("Failed to create OpenAI client", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	healthLogRepo := repository.NewHealthLogRepository(db)
	insightRepo := repository.NewInsightRepository(db)

	statsService := services.NewStatsService(healthLogRepo)

	authController := controllers.NewAuthController(userRepo, cfg.JWT.Secret)
	healthLogController := controllers.NewHealthLogController(healthLogRepo, statsCache, log)
	insightsController := controllers.NewInsightsController(insightRepo, openaiClient, log)
	statsController := controllers.NewStatsController(statsService, statsCache, log)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "HealthMate API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	auth := middleware.AuthMiddleware(cfg.JWT.Secret)
	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterHealthLogRoutes(router, auth, healthLogController)
	routes.RegisterInsightsRoutes(router, auth, insightsController)
	routes.RegisterStatsRoutes(router, auth, statsController)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   90 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Info("Server starting", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
