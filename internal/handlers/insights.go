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

// GetInsights GET /insights
func GetInsights(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var insights []models.Insight
	if err := database.DB.Where("user_id = ?", userID).Order("created_at desc").Limit(50).Find(&insights).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch insights"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// GenerateInsights POST /insights/generate
// Replaces the tip/achievement set from the current record history.
func GenerateInsights(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tips, err := services.RegenerateInsights(database.DB, userID.(string), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insights"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": tips})
}

// MarkInsightRead PUT /insights/:id/read
func MarkInsightRead(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	insightID := c.Param("id")

	var insight models.Insight
	if err := database.DB.First(&insight, "id = ?", insightID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Insight not found"})
		return
	}

	if insight.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	insight.Read = true
	database.DB.Save(&insight)

	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// GetTrend GET /insights/trend
func GetTrend(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	analysis, err := services.TrendForUser(database.DB, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze trend"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": analysis})
}

// GetGoals GET /insights/goals
func GetGoals(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	goals, err := services.GoalsForUser(database.DB, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// AcceptGoal POST /insights/goals/:id/accept
func AcceptGoal(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	goalID := c.Param("id")

	insight, err := services.AcceptGoal(database.DB, userID.(string), goalID)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept goal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insight": insight})
}
