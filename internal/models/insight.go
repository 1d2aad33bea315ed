package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InsightKind string

const (
	InsightTip         InsightKind = "tip"
	InsightTrend       InsightKind = "trend"
	InsightGoal        InsightKind = "goal"
	InsightAchievement InsightKind = "achievement"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Insight is a generated message shown to a user. Tip and achievement
// rows are superseded on each regeneration run; trend and goal rows
// persist. Only the read flag mutates after creation.
type Insight struct {
	ID           string      `gorm:"primaryKey;type:text" json:"id"`
	UserID       string      `gorm:"index;type:text;not null" json:"userId"`
	Kind         InsightKind `gorm:"type:text;not null" json:"kind"`
	Title        string      `json:"title"`
	Content      string      `gorm:"type:text" json:"content"`
	Priority     Priority    `gorm:"type:text;default:'medium'" json:"priority"`
	Category     string      `json:"category"`
	CarbonImpact *float64    `json:"carbonImpact,omitempty"`
	Read         bool        `gorm:"default:false" json:"read"`
	CreatedAt    time.Time   `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (i *Insight) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	return
}

// Goal is a suggested reduction target. Goals are regenerated on each
// analysis run and never persisted; accepting one materializes an
// Insight of kind goal.
type Goal struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	TargetReductionPct int     `json:"targetReduction"`
	Timeframe          string  `json:"timeframe"` // week | month | quarter
	Category           string  `json:"category"`
	Difficulty         string  `json:"difficulty"` // easy | medium | hard
	EstimatedSavingKg  float64 `json:"estimatedSaving"`
}
