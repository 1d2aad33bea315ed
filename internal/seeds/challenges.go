package seeds

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
)

// ChallengeCatalog is the fixed set of daily/weekly challenges. Seeded
// idempotently at every boot; IDs are stable so UserChallenge rows
// survive restarts.
func ChallengeCatalog() []models.Challenge {
	return []models.Challenge{
		{
			ID:             "walk-5km",
			Title:          "Walk 5km Today",
			Description:    "Replace car trips with walking for short distances",
			Type:           models.ChallengeDaily,
			Category:       "transport",
			Points:         50,
			Target:         5,
			Unit:           "km",
			Icon:           "🚶",
			Difficulty:     "easy",
			CarbonSavingKg: 1.2,
		},
		{
			ID:             "no-meat-day",
			Title:          "Meat-Free Day",
			Description:    "Go vegetarian for the entire day",
			Type:           models.ChallengeDaily,
			Category:       "diet",
			Points:         75,
			Target:         1,
			Unit:           "day",
			Icon:           "🥗",
			Difficulty:     "medium",
			CarbonSavingKg: 2.5,
		},
		{
			ID:             "reduce-shower-time",
			Title:          "Short Showers",
			Description:    "Keep showers under 5 minutes",
			Type:           models.ChallengeDaily,
			Category:       "water",
			Points:         30,
			Target:         5,
			Unit:           "minutes",
			Icon:           "🚿",
			Difficulty:     "easy",
			CarbonSavingKg: 0.8,
		},
		{
			ID:             "zero-waste-day",
			Title:          "Zero Waste Day",
			Description:    "Produce no single-use plastic waste",
			Type:           models.ChallengeDaily,
			Category:       "waste",
			Points:         100,
			Target:         1,
			Unit:           "day",
			Icon:           "♻️",
			Difficulty:     "hard",
			CarbonSavingKg: 1.5,
		},
		{
			ID:             "led-lights-only",
			Title:          "LED Lights Only",
			Description:    "Use only LED bulbs for lighting",
			Type:           models.ChallengeDaily,
			Category:       "energy",
			Points:         40,
			Target:         1,
			Unit:           "day",
			Icon:           "💡",
			Difficulty:     "easy",
			CarbonSavingKg: 0.6,
		},
		{
			ID:             "bike-to-work-week",
			Title:          "Bike to Work Week",
			Description:    "Cycle to work for 5 days this week",
			Type:           models.ChallengeWeekly,
			Category:       "transport",
			Points:         200,
			Target:         5,
			Unit:           "days",
			Icon:           "🚴",
			Difficulty:     "medium",
			CarbonSavingKg: 8.5,
		},
		{
			ID:             "plant-based-week",
			Title:          "Plant-Based Week",
			Description:    "Eat only plant-based meals for a week",
			Type:           models.ChallengeWeekly,
			Category:       "diet",
			Points:         300,
			Target:         7,
			Unit:           "days",
			Icon:           "🌱",
			Difficulty:     "hard",
			CarbonSavingKg: 15.2,
		},
		{
			ID:             "energy-saving-week",
			Title:          "Energy Saving Week",
			Description:    "Reduce energy consumption by 20% this week",
			Type:           models.ChallengeWeekly,
			Category:       "energy",
			Points:         250,
			Target:         20,
			Unit:           "%",
			Icon:           "⚡",
			Difficulty:     "medium",
			CarbonSavingKg: 12.0,
		},
	}
}

func SeedChallenges(db *gorm.DB) {
	logger.Info().Msg("🌱 Seeding challenge catalog...")

	catalog := ChallengeCatalog()
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&catalog).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to seed challenges")
		return
	}

	logger.Info().Int("count", len(catalog)).Msg("Challenge catalog seeded")
}
