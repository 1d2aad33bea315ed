package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/handlers"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/middleware"
)

func RegisterInsightRoutes(r gin.IRouter) {
	insights := r.Group("/insights")
	insights.Use(middleware.AuthMiddleware())
	{
		insights.GET("", handlers.GetInsights)
		insights.POST("/generate", handlers.GenerateInsights)
		insights.PUT("/:id/read", handlers.MarkInsightRead)
		insights.GET("/trend", handlers.GetTrend)
		insights.GET("/goals", handlers.GetGoals)
		insights.POST("/goals/:id/accept", handlers.AcceptGoal)
	}
}
