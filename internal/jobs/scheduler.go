package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/services"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
)

// Start wires the recurring maintenance jobs and returns the running
// scheduler so main can Stop it on shutdown.
//
//   - every Monday 06:00: insight regeneration for all users (picks up
//     the Monday kickoff tip without waiting for a manual refresh)
//   - nightly 00:05: leaderboard cache invalidation, so day boundaries
//     never serve a stale ordering for long-idle deployments
func Start(db *gorm.DB) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 6 * * 1", func() { regenerateAllInsights(db) }); err != nil {
		logger.Error().Err(err).Msg("Failed to schedule insight regeneration")
	}

	if _, err := c.AddFunc("5 0 * * *", func() {
		services.InvalidateLeaderboard()
		logger.Info().Msg("Nightly leaderboard cache invalidation")
	}); err != nil {
		logger.Error().Err(err).Msg("Failed to schedule leaderboard invalidation")
	}

	c.Start()
	logger.Info().Msg("Job scheduler started")
	return c
}

func regenerateAllInsights(db *gorm.DB) {
	var users []models.User
	if err := db.Select("id").Find(&users).Error; err != nil {
		logger.Error().Err(err).Msg("Insight regeneration: failed to list users")
		return
	}

	now := time.Now()
	ok := 0
	for _, u := range users {
		if _, err := services.RegenerateInsights(db, u.ID, now); err != nil {
			logger.Error().Err(err).Str("user_id", u.ID).Msg("Insight regeneration failed")
			continue
		}
		ok++
	}
	logger.Info().Int("users", ok).Msg("Weekly insight regeneration complete")
}
