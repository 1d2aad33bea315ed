package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/config"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/jobs"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/middleware"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/routes"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/seeds"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting EcoTracker Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()

	logger.Info().Msg("🔄 Running Database Migrations...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.CarbonRecord{},
		&models.Insight{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.CommunityPost{},
		&models.PostComment{},
		&models.PostLike{},
		&models.Notification{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}
	logger.Info().Msg("✅ Database Migrations Complete")

	seeds.SeedChallenges(database.DB)

	scheduler := jobs.Start(database.DB)
	defer scheduler.Stop()

	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		routes.RegisterAuthRoutes(auth)

		routes.RegisterRecordRoutes(api)
		routes.RegisterInsightRoutes(api)
		routes.RegisterChallengeRoutes(api)
		routes.RegisterCommunityRoutes(api)
		routes.RegisterNotificationRoutes(api)
		routes.RegisterLeaderboardRoutes(api)
	}

	// Health check with DB and Redis status.
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status":  status,
			"message": "EcoTracker Backend is running 🌱",
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("🛑 Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("✅ Server exited gracefully")
}
