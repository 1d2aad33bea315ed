package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/services"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
)

// CreateRecord POST /records
// Scores the questionnaire, persists the resulting CarbonRecord and
// returns the emission with its impact equivalences.
func CreateRecord(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var answers models.QuestionnaireAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emission := services.ScoreFootprint(answers)

	record := models.CarbonRecord{
		UserID:            userID.(string),
		Emission:          emission,
		CalculationInputs: answers,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		logger.Error().Err(err).Str("user_id", userID.(string)).Msg("Failed to create carbon record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save record"})
		return
	}

	services.InvalidateLeaderboard()

	resp := gin.H{
		"record": record,
		"impact": services.ComputeImpact(emission),
	}
	if unknown := services.UnknownAnswerFields(answers); len(unknown) > 0 {
		resp["warnings"] = unknown
	}

	c.JSON(http.StatusCreated, resp)
}

// GetRecords GET /records
// Returns the user's own records ascending by time.
func GetRecords(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var records []models.CarbonRecord
	if err := database.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// GetRecordSummary GET /records/summary
func GetRecordSummary(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var records []models.CarbonRecord
	if err := database.DB.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	summary := summarizeRecords(records)
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

type recordSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	TotalKg float64 `json:"totalKg"`
}

func summarizeRecords(records []models.CarbonRecord) recordSummary {
	s := recordSummary{Count: len(records)}
	if len(records) == 0 {
		return s
	}

	s.Min = records[0].Emission
	s.Max = records[0].Emission
	for _, r := range records {
		s.TotalKg += r.Emission
		if r.Emission < s.Min {
			s.Min = r.Emission
		}
		if r.Emission > s.Max {
			s.Max = r.Emission
		}
	}
	s.Average = s.TotalKg / float64(len(records))
	return s
}

// ExportRecords GET /records/export?format=csv|json
func ExportRecords(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var records []models.CarbonRecord
	if err := database.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "json":
		c.Header("Content-Disposition", `attachment; filename="carbon-footprint-data.json"`)
		c.JSON(http.StatusOK, gin.H{
			"records": records,
			"summary": summarizeRecords(records),
		})
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="carbon-footprint-data.csv"`)

		w := csv.NewWriter(c.Writer)
		_ = w.Write([]string{"Date", "Carbon Emission (kg CO2)"})
		for _, r := range records {
			_ = w.Write([]string{
				r.CreatedAt.Format("2006-01-02"),
				strconv.FormatFloat(r.Emission, 'f', 2, 64),
			})
		}
		w.Flush()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported export format %q", format)})
	}
}
