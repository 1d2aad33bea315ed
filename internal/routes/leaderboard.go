package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/handlers"
)

func RegisterLeaderboardRoutes(r gin.IRouter) {
	r.GET("/leaderboard", handlers.GetLeaderboard)
}
