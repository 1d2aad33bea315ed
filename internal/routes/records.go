package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/handlers"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/middleware"
)

func RegisterRecordRoutes(r gin.IRouter) {
	records := r.Group("/records")
	records.Use(middleware.AuthMiddleware())
	{
		records.POST("", middleware.SubmitRateLimit(), handlers.CreateRecord)
		records.GET("", handlers.GetRecords)
		records.GET("/summary", handlers.GetRecordSummary)
		records.GET("/export", handlers.ExportRecords)
	}
}
