package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
)

func TestScoreFootprint_Baseline(t *testing.T) {
	// Empty answers contribute nothing beyond the base emission.
	got := ScoreFootprint(models.QuestionnaireAnswers{})
	assert.Equal(t, 2.0, got)
}

func TestScoreFootprint_HighImpactProfile(t *testing.T) {
	answers := models.QuestionnaireAnswers{
		Diet:             models.DietMeat,
		Transport:        models.TransportCar,
		VehicleKm:        100,
		AirTravel:        models.AirTravelVeryFrequently,
		WasteBagSize:     models.WasteBagMedium,
		WasteBagCount:    3,
		TvPcHours:        4,
		InternetHours:    10,
		GroceryBill:      200,
		NewClothes:       2,
		EnergyEfficiency: models.EfficiencyNo,
	}

	// 2.0 + 1.5 + 0.1 + 2.0 + 0.6 + 0.2 + 0.3 + 0.4 + 0.2
	got := ScoreFootprint(answers)
	assert.InDelta(t, 7.3, got, 1e-9)
}

func TestScoreFootprint_LowImpactProfile(t *testing.T) {
	answers := models.QuestionnaireAnswers{
		Diet:             models.DietVegan,
		Transport:        models.TransportWalk,
		AirTravel:        models.AirTravelNever,
		EnergyEfficiency: models.EfficiencyYes,
	}

	// 2.0 - 0.2 - 0.3 - 0.3
	got := ScoreFootprint(answers)
	assert.InDelta(t, 1.2, got, 1e-9)
}

func TestScoreFootprint_Deterministic(t *testing.T) {
	answers := models.QuestionnaireAnswers{
		Diet:          models.DietFish,
		Transport:     models.TransportPublic,
		WasteBagSize:  models.WasteBagLarge,
		WasteBagCount: 2,
	}

	first := ScoreFootprint(answers)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ScoreFootprint(answers))
	}
}

func TestScoreFootprint_UnknownValuesScoreAsZeroAdjustment(t *testing.T) {
	known := ScoreFootprint(models.QuestionnaireAnswers{})
	unknown := ScoreFootprint(models.QuestionnaireAnswers{
		Diet:      "carnivore",
		Transport: "rocket",
	})
	assert.Equal(t, known, unknown)
}

func TestUnknownAnswerFields(t *testing.T) {
	warnings := UnknownAnswerFields(models.QuestionnaireAnswers{
		Diet:      "carnivore",
		Transport: models.TransportBike,
		AirTravel: "daily",
	})
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "diet")
	assert.Contains(t, warnings[1], "airTravel")

	assert.Empty(t, UnknownAnswerFields(models.QuestionnaireAnswers{
		Diet:             models.DietVegan,
		Transport:        models.TransportWalk,
		AirTravel:        models.AirTravelNever,
		WasteBagSize:     models.WasteBagSmall,
		EnergyEfficiency: models.EfficiencyYes,
	}))
}

func TestComputeImpact(t *testing.T) {
	impact := ComputeImpact(2.0)

	assert.Equal(t, 2.0, impact.DailyKg)
	assert.Equal(t, 60.0, impact.MonthlyKg)
	assert.Equal(t, 730.0, impact.YearlyKg)
	assert.Equal(t, 35, impact.TreesToOffset) // ceil(730 / 21)
	assert.InDelta(t, 730.0/0.404, impact.DrivingKm, 1e-9)
	assert.InDelta(t, 730.0*2.3, impact.EnergyKWh, 1e-9)
}
