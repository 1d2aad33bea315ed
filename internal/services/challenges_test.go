package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	apperrors "github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/errors"
)

func TestPeriodKey(t *testing.T) {
	wednesday := time.Date(2025, 3, 5, 15, 30, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 3, 8, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-05", PeriodKey(models.ChallengeDaily, wednesday))

	// All days of the same week map to the same Sunday-anchored key.
	assert.Equal(t, "week-2025-03-02", PeriodKey(models.ChallengeWeekly, wednesday))
	assert.Equal(t, "week-2025-03-02", PeriodKey(models.ChallengeWeekly, sunday))
	assert.Equal(t, "week-2025-03-02", PeriodKey(models.ChallengeWeekly, saturday))

	nextSunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "week-2025-03-09", PeriodKey(models.ChallengeWeekly, nextSunday))
}

func TestStartChallenge_IdempotentWithinPeriod(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "starter", Email: "starter@example.com"}
	db.Create(&user)
	challenge := models.Challenge{ID: "walk-today", Title: "Walk Today", Type: models.ChallengeDaily, Points: 50, Target: 5}
	db.Create(&challenge)

	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	first, err := StartChallenge(db, user.ID, "walk-today", now)
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-05", first.PeriodKey)

	again, err := StartChallenge(db, user.ID, "walk-today", now.Add(2*time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	var count int64
	db.Model(&models.UserChallenge{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestStartChallenge_NewPeriodNewInstance(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "daily", Email: "daily@example.com"}
	db.Create(&user)
	db.Create(&models.Challenge{ID: "walk-today", Title: "Walk Today", Type: models.ChallengeDaily, Points: 50, Target: 5})

	today := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	first, err := StartChallenge(db, user.ID, "walk-today", today)
	assert.NoError(t, err)
	second, err := StartChallenge(db, user.ID, "walk-today", tomorrow)
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.PeriodKey, second.PeriodKey)
}

func TestStartChallenge_UnknownChallenge(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "nobody", Email: "nobody@example.com"}
	db.Create(&user)

	_, err := StartChallenge(db, user.ID, "no-such-challenge", time.Now())
	assert.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestUpdateProgress_ClampsToTarget(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "clamper", Email: "clamper@example.com"}
	db.Create(&user)
	db.Create(&models.Challenge{ID: "walk-today", Title: "Walk Today", Type: models.ChallengeDaily, Points: 50, Target: 5})

	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	uc, err := UpdateProgress(db, user.ID, "walk-today", 12.5, now)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, uc.Progress)

	uc, err = UpdateProgress(db, user.ID, "walk-today", -3, now)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, uc.Progress)

	uc, err = UpdateProgress(db, user.ID, "walk-today", 3.5, now)
	assert.NoError(t, err)
	assert.Equal(t, 3.5, uc.Progress)
}

func TestCompleteChallenge_AwardsPointsOnce(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "finisher", Email: "finisher@example.com"}
	db.Create(&user)
	db.Create(&models.Challenge{ID: "walk-today", Title: "Walk Today", Type: models.ChallengeDaily, Points: 50, Target: 5, CarbonSavingKg: 1.2})

	var pushes []string
	origPush := SendPush
	SendPush = func(userID, title, body string) { pushes = append(pushes, title) }
	defer func() { SendPush = origPush }()

	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	uc, err := CompleteChallenge(db, user.ID, "walk-today", now)
	assert.NoError(t, err)
	assert.True(t, uc.Completed)
	assert.Equal(t, 5.0, uc.Progress)
	assert.NotNil(t, uc.CompletedAt)

	var updated models.User
	db.First(&updated, "id = ?", user.ID)
	assert.Equal(t, 50, updated.TotalPoints)
	assert.Equal(t, 1, updated.DailyStreak)

	// Completing again within the same period changes nothing.
	uc2, err := CompleteChallenge(db, user.ID, "walk-today", now.Add(time.Hour))
	assert.NoError(t, err)
	assert.True(t, uc2.Completed)

	db.First(&updated, "id = ?", user.ID)
	assert.Equal(t, 50, updated.TotalPoints)
	assert.Equal(t, 1, updated.DailyStreak)

	assert.Len(t, pushes, 1)

	var notifications []models.Notification
	db.Where("user_id = ?", user.ID).Find(&notifications)
	assert.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeSuccess, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "50 points")
}

func TestFinalizeCompletion_LoserSeesTerminalState(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "racer", Email: "racer@example.com"}
	db.Create(&user)
	challenge := models.Challenge{ID: "walk-today", Title: "Walk Today", Type: models.ChallengeDaily, Points: 50, Target: 5}
	db.Create(&challenge)

	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	started, err := StartChallenge(db, user.ID, "walk-today", now)
	assert.NoError(t, err)

	// Two requests race with the same incomplete snapshot.
	stale := *started

	awarded, err := finalizeCompletion(db, started, challenge, user.ID, now)
	assert.NoError(t, err)
	assert.True(t, awarded)

	awarded, err = finalizeCompletion(db, &stale, challenge, user.ID, now)
	assert.NoError(t, err)
	assert.False(t, awarded)
	assert.False(t, stale.Completed)

	var updated models.User
	db.First(&updated, "id = ?", user.ID)
	assert.Equal(t, 50, updated.TotalPoints)
	assert.Equal(t, 1, updated.DailyStreak)

	// The loser's caller re-fetches, so the response still shows the
	// instance as completed.
	var current models.UserChallenge
	assert.NoError(t, db.First(&current, "id = ?", stale.ID).Error)
	assert.True(t, current.Completed)
	assert.Equal(t, 5.0, current.Progress)
	assert.NotNil(t, current.CompletedAt)
}

func TestCompleteChallenge_WeeklyDoesNotBumpStreak(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "weekly", Email: "weekly@example.com"}
	db.Create(&user)
	db.Create(&models.Challenge{ID: "bike-week", Title: "Bike Week", Type: models.ChallengeWeekly, Points: 200, Target: 20})

	_, err := CompleteChallenge(db, user.ID, "bike-week", time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	var updated models.User
	db.First(&updated, "id = ?", user.ID)
	assert.Equal(t, 200, updated.TotalPoints)
	assert.Equal(t, 0, updated.DailyStreak)
}

func TestCompleteChallenge_ProgressImmutableAfterCompletion(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "frozen", Email: "frozen@example.com"}
	db.Create(&user)
	db.Create(&models.Challenge{ID: "walk-today", Title: "Walk Today", Type: models.ChallengeDaily, Points: 50, Target: 5})

	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	_, err := CompleteChallenge(db, user.ID, "walk-today", now)
	assert.NoError(t, err)

	uc, err := UpdateProgress(db, user.ID, "walk-today", 1, now)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, uc.Progress)
	assert.True(t, uc.Completed)
}

func TestCurrentChallenges(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Username: "lister", Email: "lister@example.com"}
	db.Create(&user)
	db.Create(&models.Challenge{ID: "walk-today", Title: "Walk Today", Type: models.ChallengeDaily, Points: 50, Target: 5})
	db.Create(&models.Challenge{ID: "bike-week", Title: "Bike Week", Type: models.ChallengeWeekly, Points: 200, Target: 20})

	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	// Yesterday's daily instance must not show up today.
	_, err := StartChallenge(db, user.ID, "walk-today", yesterday)
	assert.NoError(t, err)
	_, err = StartChallenge(db, user.ID, "walk-today", now)
	assert.NoError(t, err)
	_, err = StartChallenge(db, user.ID, "bike-week", now)
	assert.NoError(t, err)

	instances, err := CurrentChallenges(db, user.ID, now)
	assert.NoError(t, err)
	assert.Len(t, instances, 2)
	for _, uc := range instances {
		assert.NotEmpty(t, uc.Challenge.Title)
	}
}
