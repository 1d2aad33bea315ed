package services

import (
	"fmt"
	"math"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
)

type TrendDirection string

const (
	TrendUnknown   TrendDirection = "unknown"
	TrendStable    TrendDirection = "stable"
	TrendImproving TrendDirection = "improving"
	TrendWorsening TrendDirection = "worsening"
)

type TrendAnalysis struct {
	Direction TrendDirection `json:"direction"`
	ChangePct float64        `json:"changePct"`
	RecentAvg float64        `json:"recentAvg"`
	Summary   string         `json:"summary"`
}

const insufficientDataMessage = "Start tracking more data to see personalized insights about your carbon footprint trends."

// AnalyzeTrend compares the most recent 7 records against the preceding
// 7 and reports the direction of change. Records must be ordered
// ascending by time. With fewer than 14 records the older window is
// empty and its average is defined to equal the recent average, so the
// change is 0% rather than a division by zero.
func AnalyzeTrend(records []models.CarbonRecord) TrendAnalysis {
	if len(records) < 2 {
		return TrendAnalysis{Direction: TrendUnknown, Summary: insufficientDataMessage}
	}

	recent := records[max(0, len(records)-7):]
	older := records[max(0, len(records)-14):max(0, len(records)-7)]

	recentAvg := meanEmission(recent)
	olderAvg := recentAvg
	if len(older) > 0 {
		olderAvg = meanEmission(older)
	}

	change := (recentAvg - olderAvg) / olderAvg * 100

	analysis := TrendAnalysis{ChangePct: change, RecentAvg: recentAvg}
	switch {
	case math.Abs(change) < 5:
		analysis.Direction = TrendStable
		analysis.Summary = fmt.Sprintf(
			"Your carbon footprint has remained stable at %.2f kg CO₂ per day. Consider trying new eco-friendly habits to reduce your impact further.",
			recentAvg)
	case change < 0:
		analysis.Direction = TrendImproving
		analysis.Summary = fmt.Sprintf(
			"Excellent progress! Your emissions have decreased by %.1f%% compared to last week. You're now averaging %.2f kg CO₂ per day. Keep up the great work!",
			math.Abs(change), recentAvg)
	default:
		analysis.Direction = TrendWorsening
		analysis.Summary = fmt.Sprintf(
			"Your emissions have increased by %.1f%% this week to %.2f kg CO₂ per day. Let's work on some strategies to get back on track with your environmental goals.",
			change, recentAvg)
	}
	return analysis
}

func meanEmission(records []models.CarbonRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.Emission
	}
	return sum / float64(len(records))
}
