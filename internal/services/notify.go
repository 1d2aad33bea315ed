package services

import (
	"gorm.io/gorm"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
)

// PushSender is the push-style delivery channel. The default emits a
// structured log line; tests swap in a recorder. A real deployment would
// plug an FCM/APNs client in here.
type PushSender func(userID, title, body string)

var SendPush PushSender = func(userID, title, body string) {
	logger.Info().
		Str("user_id", userID).
		Str("title", title).
		Str("body", body).
		Msg("push notification")
}

// Notify appends an in-app notification. Best-effort: a failed insert
// is logged, never surfaced, so derived flows keep going. The push
// channel is separate; callers emit both when they want the pair.
func Notify(db *gorm.DB, userID string, nType models.NotificationType, title, message string) {
	n := models.Notification{
		UserID:  userID,
		Type:    nType,
		Title:   title,
		Message: message,
	}
	if err := db.Create(&n).Error; err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Failed to create notification")
	}
}
