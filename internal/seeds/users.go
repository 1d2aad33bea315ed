package seeds

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/utils"
)

// SeedDemoUsers creates a handful of demo accounts with emission
// history so the leaderboard and trend views have data on a fresh
// install. Skipped entirely when any user already exists.
func SeedDemoUsers(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		logger.Info().Msg("Users already present, skipping demo seed")
		return
	}

	logger.Info().Msg("🌍 Seeding demo users...")

	hash, err := bcrypt.GenerateFromPassword([]byte("EcoDemo123!"), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash demo password")
		return
	}

	demo := []struct {
		user      models.User
		emissions []float64
	}{
		{
			user: models.User{Username: "EcoAdmin", Email: "admin@example.com", City: "San Francisco", Role: models.RoleAdmin},
		},
		{
			user:      models.User{Username: "EcoWarrior", Email: "ecowarrior@example.com", City: "San Francisco"},
			emissions: []float64{2.5, 2.1, 1.8},
		},
		{
			user:      models.User{Username: "GreenLiving", Email: "greenliving@example.com", City: "Portland"},
			emissions: []float64{3.2, 2.9},
		},
		{
			user:      models.User{Username: "SolarPower", Email: "solarpower@example.com", City: "Austin"},
			emissions: []float64{1.4, 1.2, 1.1, 1.3},
		},
	}

	for _, d := range demo {
		d.user.ID = utils.GenerateID()
		d.user.Password = string(hash)
		if err := db.Create(&d.user).Error; err != nil {
			logger.Error().Err(err).Str("username", d.user.Username).Msg("Failed to seed user")
			continue
		}
		for i, e := range d.emissions {
			record := models.CarbonRecord{
				ID:        utils.GenerateID(),
				UserID:    d.user.ID,
				Emission:  e,
				CreatedAt: time.Now().AddDate(0, 0, -(len(d.emissions) - i)),
			}
			if err := db.Create(&record).Error; err != nil {
				logger.Error().Err(err).Msg("Failed to seed carbon record")
			}
		}
	}

	logger.Info().Int("users", len(demo)).Msg("Demo users seeded")
}
