package main

import (
	"os"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/config"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
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

	database.Connect()

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

	seeds.SeedChallenges(database.DB)
	seeds.SeedDemoUsers(database.DB)

	logger.Info().Msg("✅ Seeding complete")
}
