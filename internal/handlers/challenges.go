package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/services"
	apperrors "github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/errors"
)

// ListChallenges GET /challenges
// The static catalog.
func ListChallenges(c *gin.Context) {
	var challenges []models.Challenge
	if err := database.DB.Order("type asc, points asc").Find(&challenges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

// GetMyChallenges GET /challenges/mine
// The user's instances for the current day and week.
func GetMyChallenges(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	instances, err := services.CurrentChallenges(database.DB, userID.(string), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenge progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"userChallenges": instances})
}

// StartChallenge POST /challenges/:id/start
func StartChallenge(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	uc, err := services.StartChallenge(database.DB, userID.(string), c.Param("id"), time.Now())
	if err != nil {
		respondServiceError(c, err, "Failed to start challenge")
		return
	}

	c.JSON(http.StatusOK, gin.H{"userChallenge": uc})
}

// Pointer so an explicit {"progress": 0} (reset) survives the
// required-field check.
type progressInput struct {
	Progress *float64 `json:"progress" binding:"required"`
}

// UpdateChallengeProgress PUT /challenges/:id/progress
func UpdateChallengeProgress(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input progressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uc, err := services.UpdateProgress(database.DB, userID.(string), c.Param("id"), *input.Progress, time.Now())
	if err != nil {
		respondServiceError(c, err, "Failed to update progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{"userChallenge": uc})
}

// CompleteChallenge POST /challenges/:id/complete
func CompleteChallenge(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	uc, err := services.CompleteChallenge(database.DB, userID.(string), c.Param("id"), time.Now())
	if err != nil {
		respondServiceError(c, err, "Failed to complete challenge")
		return
	}

	c.JSON(http.StatusOK, gin.H{"userChallenge": uc})
}

func respondServiceError(c *gin.Context, err error, fallback string) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
