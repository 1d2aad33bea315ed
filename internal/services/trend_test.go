package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
)

func recordsWithEmissions(emissions ...float64) []models.CarbonRecord {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	records := make([]models.CarbonRecord, len(emissions))
	for i, e := range emissions {
		records[i] = models.CarbonRecord{
			Emission:  e,
			CreatedAt: base.AddDate(0, 0, i),
		}
	}
	return records
}

func TestAnalyzeTrend_InsufficientData(t *testing.T) {
	got := AnalyzeTrend(nil)
	assert.Equal(t, TrendUnknown, got.Direction)
	assert.Equal(t, insufficientDataMessage, got.Summary)

	got = AnalyzeTrend(recordsWithEmissions(2.5))
	assert.Equal(t, TrendUnknown, got.Direction)
}

func TestAnalyzeTrend_EmptyOlderWindowIsStable(t *testing.T) {
	// Fewer than 14 records: the older window is empty, so the change
	// is defined as 0% rather than dividing by zero.
	got := AnalyzeTrend(recordsWithEmissions(3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0))

	assert.Equal(t, TrendStable, got.Direction)
	assert.Equal(t, 0.0, got.ChangePct)
	assert.Equal(t, 3.0, got.RecentAvg)
	assert.Contains(t, got.Summary, "remained stable at 3.00 kg")
}

func TestAnalyzeTrend_Improving(t *testing.T) {
	got := AnalyzeTrend(recordsWithEmissions(
		4.0, 4.0, 4.0, 4.0, 4.0, 4.0, 4.0,
		3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0,
	))

	assert.Equal(t, TrendImproving, got.Direction)
	assert.InDelta(t, -25.0, got.ChangePct, 1e-9)
	assert.Equal(t, 3.0, got.RecentAvg)
	assert.Contains(t, got.Summary, "decreased by 25.0%")
}

func TestAnalyzeTrend_Worsening(t *testing.T) {
	got := AnalyzeTrend(recordsWithEmissions(
		2.0, 2.0, 2.0, 2.0, 2.0, 2.0, 2.0,
		3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0,
	))

	assert.Equal(t, TrendWorsening, got.Direction)
	assert.InDelta(t, 50.0, got.ChangePct, 1e-9)
	assert.Contains(t, got.Summary, "increased by 50.0%")
}

func TestAnalyzeTrend_SmallChangeIsStable(t *testing.T) {
	// +2.5% sits inside the 5% dead band.
	got := AnalyzeTrend(recordsWithEmissions(
		2.0, 2.0, 2.0, 2.0, 2.0, 2.0, 2.0,
		2.05, 2.05, 2.05, 2.05, 2.05, 2.05, 2.05,
	))

	assert.Equal(t, TrendStable, got.Direction)
	assert.InDelta(t, 2.5, got.ChangePct, 1e-9)
}

func TestAnalyzeTrend_UsesOnlyLastFourteenRecords(t *testing.T) {
	// Earlier history beyond the two windows must not affect the result.
	emissions := []float64{9.0, 9.0, 9.0}
	for i := 0; i < 7; i++ {
		emissions = append(emissions, 4.0)
	}
	for i := 0; i < 7; i++ {
		emissions = append(emissions, 2.0)
	}

	got := AnalyzeTrend(recordsWithEmissions(emissions...))
	assert.Equal(t, TrendImproving, got.Direction)
	assert.InDelta(t, -50.0, got.ChangePct, 1e-9)
}
