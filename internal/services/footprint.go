package services

import (
	"fmt"
	"math"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
)

const (
	baseEmission = 2.0
	minEmission  = 0.5
)

// Offset equivalences used on the result screen and in exports.
// One tree absorbs ~21kg CO2/year; average car emits 0.404 kg/km.
const (
	treeAbsorptionKgPerYear = 21.0
	carKgPerKm              = 0.404
	kwhPerKg                = 2.3
)

// ScoreFootprint maps one questionnaire answer set to an estimated daily
// emission in kg CO2. Pure and deterministic: unrecognized categorical
// values contribute no adjustment (see UnknownAnswerFields), continuous
// answers are scaled by fixed per-unit coefficients, and the result is
// floored at 0.5 kg.
func ScoreFootprint(a models.QuestionnaireAnswers) float64 {
	emission := baseEmission

	switch a.Diet {
	case models.DietMeat:
		emission += 1.5
	case models.DietFish:
		emission += 0.8
	case models.DietVegetarian:
		emission += 0.3
	case models.DietVegan:
		emission -= 0.2
	}

	switch a.Transport {
	case models.TransportCar:
		emission += a.VehicleKm * 0.001
	case models.TransportPublic:
		emission += 0.3
	case models.TransportBike:
		emission -= 0.2
	case models.TransportWalk:
		emission -= 0.3
	}

	emission += a.TvPcHours * 0.05
	emission += a.InternetHours * 0.03
	emission += a.GroceryBill * 0.002
	emission += a.NewClothes * 0.1

	switch a.WasteBagSize {
	case models.WasteBagSmall:
		emission += a.WasteBagCount * 0.1
	case models.WasteBagMedium:
		emission += a.WasteBagCount * 0.2
	case models.WasteBagLarge:
		emission += a.WasteBagCount * 0.3
	case models.WasteBagExtraLarge:
		emission += a.WasteBagCount * 0.4
	}

	switch a.AirTravel {
	case models.AirTravelVeryFrequently:
		emission += 2.0
	case models.AirTravelFrequently:
		emission += 1.5
	case models.AirTravelRarely:
		emission += 0.5
	}

	switch a.EnergyEfficiency {
	case models.EfficiencyYes:
		emission -= 0.3
	case models.EfficiencySometimes:
		emission -= 0.1
	}

	return math.Max(minEmission, emission)
}

// UnknownAnswerFields reports categorical answers that fall outside the
// closed enums. They still score as zero adjustment, but the handler
// surfaces them as warnings instead of coercing silently.
func UnknownAnswerFields(a models.QuestionnaireAnswers) []string {
	var unknown []string

	switch a.Diet {
	case models.DietMeat, models.DietFish, models.DietVegetarian, models.DietVegan, "":
	default:
		unknown = append(unknown, fmt.Sprintf("diet: %q", a.Diet))
	}
	switch a.Transport {
	case models.TransportCar, models.TransportPublic, models.TransportBike, models.TransportWalk, "":
	default:
		unknown = append(unknown, fmt.Sprintf("transport: %q", a.Transport))
	}
	switch a.AirTravel {
	case models.AirTravelNever, models.AirTravelRarely, models.AirTravelFrequently, models.AirTravelVeryFrequently, "":
	default:
		unknown = append(unknown, fmt.Sprintf("airTravel: %q", a.AirTravel))
	}
	switch a.WasteBagSize {
	case models.WasteBagSmall, models.WasteBagMedium, models.WasteBagLarge, models.WasteBagExtraLarge, "":
	default:
		unknown = append(unknown, fmt.Sprintf("wasteBagSize: %q", a.WasteBagSize))
	}
	switch a.EnergyEfficiency {
	case models.EfficiencyNo, models.EfficiencySometimes, models.EfficiencyYes, "":
	default:
		unknown = append(unknown, fmt.Sprintf("energyEfficiency: %q", a.EnergyEfficiency))
	}

	return unknown
}

// EmissionImpact is the set of derived figures shown alongside a daily
// emission estimate.
type EmissionImpact struct {
	DailyKg       float64 `json:"dailyKg"`
	MonthlyKg     float64 `json:"monthlyKg"`
	YearlyKg      float64 `json:"yearlyKg"`
	TreesToOffset int     `json:"treesToOffset"`
	DrivingKm     float64 `json:"drivingKmEquivalent"`
	EnergyKWh     float64 `json:"energyKwhEquivalent"`
}

// ComputeImpact expands a daily emission figure into monthly/yearly
// totals and offset equivalences.
func ComputeImpact(dailyKg float64) EmissionImpact {
	yearly := dailyKg * 365
	return EmissionImpact{
		DailyKg:       dailyKg,
		MonthlyKg:     dailyKg * 30,
		YearlyKg:      yearly,
		TreesToOffset: int(math.Ceil(yearly / treeAbsorptionKgPerYear)),
		DrivingKm:     yearly / carKgPerKm,
		EnergyKWh:     yearly * kwhPerKg,
	}
}
