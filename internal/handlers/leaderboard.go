package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/services"
)

// GetLeaderboard GET /leaderboard
// Public, served from cache when warm.
func GetLeaderboard(c *gin.Context) {
	entries, err := services.GetLeaderboard(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
