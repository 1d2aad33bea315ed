package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/services"
)

func TestGenerateInsightsAndFetch(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "insight_user")

	database.DB.Create(&models.CarbonRecord{UserID: user.ID, Emission: 3.5})

	c, w := authedContext(t, user.ID, "POST", "/api/insights/generate", nil)
	GenerateInsights(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = authedContext(t, user.ID, "GET", "/api/insights", nil)
	GetInsights(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Insights []models.Insight `json:"insights"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Insights)

	var titles []string
	for _, i := range resp.Insights {
		titles = append(titles, i.Title)
	}
	assert.Contains(t, titles, "Reduce Transportation Emissions")
}

func TestMarkInsightRead_OwnershipEnforced(t *testing.T) {
	SetupTestDB(t)
	owner := createTestUser(t, "insight_owner")
	other := createTestUser(t, "insight_other")

	insight := models.Insight{UserID: owner.ID, Kind: models.InsightTip, Title: "Tip"}
	database.DB.Create(&insight)

	c, w := authedContext(t, other.ID, "PUT", "/api/insights/"+insight.ID+"/read", nil)
	c.Params = gin.Params{{Key: "id", Value: insight.ID}}
	MarkInsightRead(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, w = authedContext(t, owner.ID, "PUT", "/api/insights/"+insight.ID+"/read", nil)
	c.Params = gin.Params{{Key: "id", Value: insight.ID}}
	MarkInsightRead(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Insight
	database.DB.First(&stored, "id = ?", insight.ID)
	assert.True(t, stored.Read)
}

func TestGetTrendEndpoint(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "trend_endpoint_user")

	c, w := authedContext(t, user.ID, "GET", "/api/insights/trend", nil)
	GetTrend(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"direction":"unknown"`)
}

func TestAcceptGoalEndpoint(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "goal_endpoint_user")

	database.DB.Create(&models.CarbonRecord{UserID: user.ID, Emission: 2.0})

	c, w := authedContext(t, user.ID, "POST", "/api/insights/goals/energy-efficiency/accept", nil)
	c.Params = gin.Params{{Key: "id", Value: "energy-efficiency"}}
	AcceptGoal(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = authedContext(t, user.ID, "POST", "/api/insights/goals/bogus/accept", nil)
	c.Params = gin.Params{{Key: "id", Value: "bogus"}}
	AcceptGoal(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLeaderboardEndpoint(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "board_user")

	database.DB.Create(&models.CarbonRecord{UserID: user.ID, Emission: 2.0})
	services.InvalidateLeaderboard()

	c, w := authedContext(t, user.ID, "GET", "/api/leaderboard", nil)
	GetLeaderboard(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Leaderboard []services.LeaderboardEntry `json:"leaderboard"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Leaderboard, 1)
	assert.Equal(t, "board_user", resp.Leaderboard[0].Username)
	assert.Equal(t, 1, resp.Leaderboard[0].Rank)
}
