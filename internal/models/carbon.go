package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Closed questionnaire enums. Unknown values score as zero adjustment;
// the scorer's UnknownAnswerFields reports them rather than rejecting
// the record.
type Diet string

const (
	DietMeat       Diet = "meat"
	DietFish       Diet = "fish"
	DietVegetarian Diet = "vegetarian"
	DietVegan      Diet = "vegan"
)

type Transport string

const (
	TransportCar    Transport = "car"
	TransportPublic Transport = "public"
	TransportBike   Transport = "bike"
	TransportWalk   Transport = "walk"
)

type AirTravel string

const (
	AirTravelNever          AirTravel = "never"
	AirTravelRarely         AirTravel = "rarely"
	AirTravelFrequently     AirTravel = "frequently"
	AirTravelVeryFrequently AirTravel = "very frequently"
)

type WasteBagSize string

const (
	WasteBagSmall      WasteBagSize = "small"
	WasteBagMedium     WasteBagSize = "medium"
	WasteBagLarge      WasteBagSize = "large"
	WasteBagExtraLarge WasteBagSize = "extra large"
)

type EnergyEfficiency string

const (
	EfficiencyNo        EnergyEfficiency = "No"
	EfficiencySometimes EnergyEfficiency = "Sometimes"
	EfficiencyYes       EnergyEfficiency = "Yes"
)

// QuestionnaireAnswers is the transient input of one footprint
// calculation. It is persisted only as the CalculationInputs snapshot on
// the resulting CarbonRecord.
type QuestionnaireAnswers struct {
	Diet             Diet             `json:"diet"`
	Transport        Transport        `json:"transport"`
	VehicleKm        float64          `json:"vehicleKm"`
	AirTravel        AirTravel        `json:"airTravel"`
	WasteBagSize     WasteBagSize     `json:"wasteBagSize"`
	WasteBagCount    float64          `json:"wasteBagCount"`
	TvPcHours        float64          `json:"tvPcHours"`
	InternetHours    float64          `json:"internetHours"`
	GroceryBill      float64          `json:"groceryBill"`
	NewClothes       float64          `json:"newClothes"`
	EnergyEfficiency EnergyEfficiency `json:"energyEfficiency"`
}

// CarbonRecord is one completed questionnaire submission. Immutable once
// created.
type CarbonRecord struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    string    `gorm:"index;type:text;not null" json:"userId"`
	Emission  float64   `gorm:"not null" json:"emission"`
	CreatedAt time.Time `json:"createdAt"`

	CalculationInputs QuestionnaireAnswers `gorm:"serializer:json" json:"calculationInputs"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (r *CarbonRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return
}
