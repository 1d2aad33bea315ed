package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/errors"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
)

func floatPtr(v float64) *float64 { return &v }

// GenerateTips derives tip/achievement insights from the mean emission
// across all supplied records. The three severity tiers are disjoint, so
// exactly one tier insight is produced for a non-empty record set; a
// Monday invocation adds the weekly kickoff tip. Returned insights carry
// no ID or UserID; the caller fills those in before persisting.
func GenerateTips(records []models.CarbonRecord, now time.Time) []models.Insight {
	if len(records) == 0 {
		return nil
	}

	avg := meanEmission(records)
	var tips []models.Insight

	if avg > 3.0 {
		tips = append(tips, models.Insight{
			Kind:         models.InsightTip,
			Title:        "Reduce Transportation Emissions",
			Content:      "Your carbon footprint is above average. Consider using public transport, cycling, or walking for short trips. Even replacing one car trip per day can reduce your emissions by 20-30%.",
			Priority:     models.PriorityHigh,
			Category:     "transport",
			CarbonImpact: floatPtr(1.2),
		})
	}

	if avg > 2.0 && avg <= 3.0 {
		tips = append(tips, models.Insight{
			Kind:         models.InsightTip,
			Title:        "Optimize Energy Usage",
			Content:      "You're doing well! To further reduce your footprint, try switching to LED bulbs, unplugging devices when not in use, and adjusting your thermostat by 2°C.",
			Priority:     models.PriorityMedium,
			Category:     "energy",
			CarbonImpact: floatPtr(0.8),
		})
	}

	if avg <= 2.0 {
		tips = append(tips, models.Insight{
			Kind:     models.InsightAchievement,
			Title:    "Eco Champion Status!",
			Content:  "Congratulations! Your carbon footprint is well below average. You're making a real difference. Consider sharing your eco-friendly habits with the community to inspire others.",
			Priority: models.PriorityHigh,
			Category: "general",
		})
	}

	if now.Weekday() == time.Monday {
		tips = append(tips, models.Insight{
			Kind:     models.InsightTip,
			Title:    "Start Your Week Green",
			Content:  "Monday is perfect for setting eco-friendly intentions! Plan your meals to reduce food waste, choose sustainable transport options, and set a weekly carbon reduction goal.",
			Priority: models.PriorityMedium,
			Category: "general",
		})
	}

	return tips
}

// GenerateGoals builds the suggested reduction goals for a record set.
// The energy goal is unconditional; transport and diet goals are gated
// on the mean emission. Targets and savings are fixed constants.
func GenerateGoals(records []models.CarbonRecord) []models.Goal {
	if len(records) == 0 {
		return nil
	}

	avg := meanEmission(records)
	var goals []models.Goal

	if avg > 2.5 {
		goals = append(goals, models.Goal{
			ID:                 "reduce-transport-emissions",
			Title:              "Reduce Transportation Footprint",
			Description:        "Cut your transport-related emissions by using alternative modes of transport 3 days per week",
			TargetReductionPct: 15,
			Timeframe:          "month",
			Category:           "transport",
			Difficulty:         "medium",
			EstimatedSavingKg:  4.5,
		})
	}

	goals = append(goals, models.Goal{
		ID:                 "energy-efficiency",
		Title:              "Improve Home Energy Efficiency",
		Description:        "Reduce energy consumption through smart usage habits and efficient appliances",
		TargetReductionPct: 10,
		Timeframe:          "month",
		Category:           "energy",
		Difficulty:         "easy",
		EstimatedSavingKg:  2.8,
	})

	if avg > 2.0 {
		goals = append(goals, models.Goal{
			ID:                 "sustainable-diet",
			Title:              "Adopt More Plant-Based Meals",
			Description:        "Replace meat with plant-based alternatives 2-3 times per week",
			TargetReductionPct: 12,
			Timeframe:          "month",
			Category:           "diet",
			Difficulty:         "medium",
			EstimatedSavingKg:  3.2,
		})
	}

	return goals
}

// RegenerateInsights recomputes tips for the user and replaces the
// previous run: existing tip/achievement rows are deleted, other insight
// kinds persist.
func RegenerateInsights(db *gorm.DB, userID string, now time.Time) ([]models.Insight, error) {
	records, err := userRecordsAscending(db, userID)
	if err != nil {
		return nil, err
	}

	tips := GenerateTips(records, now)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND kind IN ?", userID,
			[]models.InsightKind{models.InsightTip, models.InsightAchievement}).
			Delete(&models.Insight{}).Error; err != nil {
			return err
		}
		for i := range tips {
			tips[i].UserID = userID
			if err := tx.Create(&tips[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("user_id", userID).Int("tips", len(tips)).Msg("Regenerated insights")
	return tips, nil
}

// GoalsForUser regenerates the current goal set from the user's records.
func GoalsForUser(db *gorm.DB, userID string) ([]models.Goal, error) {
	records, err := userRecordsAscending(db, userID)
	if err != nil {
		return nil, err
	}
	return GenerateGoals(records), nil
}

// AcceptGoal looks the goal up in the freshly generated set and appends
// a goal insight referencing its estimated saving.
func AcceptGoal(db *gorm.DB, userID, goalID string) (*models.Insight, error) {
	goals, err := GoalsForUser(db, userID)
	if err != nil {
		return nil, err
	}

	var goal *models.Goal
	for i := range goals {
		if goals[i].ID == goalID {
			goal = &goals[i]
			break
		}
	}
	if goal == nil {
		return nil, errors.NotFound("Goal not found")
	}

	insight := models.Insight{
		UserID:       userID,
		Kind:         models.InsightGoal,
		Title:        "New Goal Accepted",
		Content:      fmt.Sprintf("You've committed to: %s. Track your progress and aim to save %g kg CO₂!", goal.Title, goal.EstimatedSavingKg),
		Priority:     models.PriorityHigh,
		Category:     goal.Category,
		CarbonImpact: floatPtr(goal.EstimatedSavingKg),
	}
	if err := db.Create(&insight).Error; err != nil {
		return nil, err
	}
	return &insight, nil
}

// TrendForUser runs the trend analyzer over the user's full history.
func TrendForUser(db *gorm.DB, userID string) (TrendAnalysis, error) {
	records, err := userRecordsAscending(db, userID)
	if err != nil {
		return TrendAnalysis{}, err
	}
	return AnalyzeTrend(records), nil
}

func userRecordsAscending(db *gorm.DB, userID string) ([]models.CarbonRecord, error) {
	var records []models.CarbonRecord
	if err := db.Where("user_id = ?", userID).Order("created_at asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
