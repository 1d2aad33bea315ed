package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/errors"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
)

// PeriodKey returns the instancing key for a challenge at the given
// time: the calendar day for daily challenges, the week (starting
// Sunday) for weekly ones. One UserChallenge row exists per
// (user, challenge, period key).
func PeriodKey(cType models.ChallengeType, at time.Time) string {
	if cType == models.ChallengeDaily {
		return at.Format("2006-01-02")
	}
	// Week starts Sunday: key by the date of the most recent Sunday.
	sunday := at.AddDate(0, 0, -int(at.Weekday()))
	return "week-" + sunday.Format("2006-01-02")
}

// StartChallenge creates the current-period instance for the user if
// none exists yet. Returns the existing instance unchanged when the
// period is already covered; the unique index backs this check against
// racing requests.
func StartChallenge(db *gorm.DB, userID, challengeID string, now time.Time) (*models.UserChallenge, error) {
	var challenge models.Challenge
	if err := db.First(&challenge, "id = ?", challengeID).Error; err != nil {
		return nil, errors.NotFound("Challenge not found")
	}

	key := PeriodKey(challenge.Type, now)

	var existing models.UserChallenge
	err := db.Where("user_id = ? AND challenge_id = ? AND period_key = ?", userID, challengeID, key).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	uc := models.UserChallenge{
		UserID:      userID,
		ChallengeID: challengeID,
		PeriodKey:   key,
		StartedAt:   now,
	}
	if err := db.Create(&uc).Error; err != nil {
		// Lost a race to the unique index: fetch the winner's row.
		if ferr := db.Where("user_id = ? AND challenge_id = ? AND period_key = ?", userID, challengeID, key).
			First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &uc, nil
}

// UpdateProgress sets the instance's progress, clamped to [0, target].
// Completed instances are immutable.
func UpdateProgress(db *gorm.DB, userID, challengeID string, progress float64, now time.Time) (*models.UserChallenge, error) {
	uc, err := StartChallenge(db, userID, challengeID, now)
	if err != nil {
		return nil, err
	}
	if uc.Completed {
		return uc, nil
	}

	var challenge models.Challenge
	if err := db.First(&challenge, "id = ?", challengeID).Error; err != nil {
		return nil, err
	}

	if progress < 0 {
		progress = 0
	}
	if progress > challenge.Target {
		progress = challenge.Target
	}

	uc.Progress = progress
	if err := db.Model(uc).Update("progress", progress).Error; err != nil {
		return nil, err
	}
	return uc, nil
}

// CompleteChallenge transitions the current-period instance to its
// terminal state: progress forced to target, completion timestamp set,
// points awarded, daily streak bumped for daily challenges, and the
// notification pair emitted. The transition happens exactly once: a
// second call returns the completed instance without re-awarding
// anything.
func CompleteChallenge(db *gorm.DB, userID, challengeID string, now time.Time) (*models.UserChallenge, error) {
	var challenge models.Challenge
	if err := db.First(&challenge, "id = ?", challengeID).Error; err != nil {
		return nil, errors.NotFound("Challenge not found")
	}

	uc, err := StartChallenge(db, userID, challengeID, now)
	if err != nil {
		return nil, err
	}
	if uc.Completed {
		return uc, nil
	}

	awarded, err := finalizeCompletion(db, uc, challenge, userID, now)
	if err != nil {
		return nil, err
	}

	if !awarded {
		// Lost the race: a concurrent request completed this instance
		// first. Re-fetch so the caller sees the terminal state.
		var current models.UserChallenge
		if err := db.First(&current, "id = ?", uc.ID).Error; err != nil {
			return nil, err
		}
		return &current, nil
	}

	Notify(db, userID, models.NotificationTypeSuccess,
		"Challenge Completed! 🎉",
		fmt.Sprintf("You completed %q and earned %d points!", challenge.Title, challenge.Points))
	SendPush(userID, "Challenge Completed!",
		fmt.Sprintf("Great job! You completed %q and saved %gkg CO₂", challenge.Title, challenge.CarbonSavingKg))

	logger.Info().
		Str("user_id", userID).
		Str("challenge_id", challengeID).
		Int("points", challenge.Points).
		Msg("Challenge completed")

	return uc, nil
}

// finalizeCompletion flips the instance to its terminal state and
// awards points and streak. The guarded update only touches rows that
// are still incomplete, so under concurrent completions exactly one
// call reports awarded=true.
func finalizeCompletion(db *gorm.DB, uc *models.UserChallenge, challenge models.Challenge, userID string, now time.Time) (bool, error) {
	awarded := false
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.UserChallenge{}).
			Where("id = ? AND completed = ?", uc.ID, false).
			Updates(map[string]interface{}{
				"completed":    true,
				"progress":     challenge.Target,
				"completed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		awarded = true

		updates := map[string]interface{}{
			"total_points": gorm.Expr("total_points + ?", challenge.Points),
		}
		if challenge.Type == models.ChallengeDaily {
			updates["daily_streak"] = gorm.Expr("daily_streak + 1")
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return err
		}

		uc.Completed = true
		uc.Progress = challenge.Target
		uc.CompletedAt = &now
		return nil
	})
	return awarded, err
}

// CurrentChallenges lists the user's instances for the current period,
// preloading catalog definitions.
func CurrentChallenges(db *gorm.DB, userID string, now time.Time) ([]models.UserChallenge, error) {
	dailyKey := PeriodKey(models.ChallengeDaily, now)
	weeklyKey := PeriodKey(models.ChallengeWeekly, now)

	var instances []models.UserChallenge
	err := db.Preload("Challenge").
		Where("user_id = ? AND period_key IN ?", userID, []string{dailyKey, weeklyKey}).
		Order("started_at asc").
		Find(&instances).Error
	if err != nil {
		return nil, err
	}
	return instances, nil
}
