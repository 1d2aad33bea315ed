package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeType string

const (
	ChallengeDaily  ChallengeType = "daily"
	ChallengeWeekly ChallengeType = "weekly"
)

// Challenge is one entry of the static catalog seeded at boot.
type Challenge struct {
	ID             string        `gorm:"primaryKey;type:text" json:"id"`
	Title          string        `json:"title"`
	Description    string        `gorm:"type:text" json:"description"`
	Type           ChallengeType `gorm:"type:text;not null" json:"type"`
	Category       string        `json:"category"` // transport | energy | waste | diet | water
	Points         int           `json:"points"`
	Target         float64       `json:"target"`
	Unit           string        `json:"unit"`
	Icon           string        `json:"icon"`
	Difficulty     string        `json:"difficulty"` // easy | medium | hard
	CarbonSavingKg float64       `json:"carbonSaving"`
}

// UserChallenge is one period-scoped attempt at a catalog challenge.
// PeriodKey is the calendar day for daily challenges and the week key
// (week starts Sunday) for weekly ones; the unique index makes duplicate
// instances for the same period impossible even under racing requests.
type UserChallenge struct {
	ID          string     `gorm:"primaryKey;type:text" json:"id"`
	UserID      string     `gorm:"uniqueIndex:idx_user_challenge_period;type:text;not null" json:"userId"`
	ChallengeID string     `gorm:"uniqueIndex:idx_user_challenge_period;type:text;not null" json:"challengeId"`
	PeriodKey   string     `gorm:"uniqueIndex:idx_user_challenge_period;type:text;not null" json:"periodKey"`
	Progress    float64    `gorm:"default:0" json:"progress"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Challenge Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
}

func (uc *UserChallenge) BeforeCreate(tx *gorm.DB) (err error) {
	if uc.ID == "" {
		uc.ID = uuid.New().String()
	}
	if uc.StartedAt.IsZero() {
		uc.StartedAt = time.Now()
	}
	return
}
