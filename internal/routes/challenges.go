package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/handlers"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/middleware"
)

func RegisterChallengeRoutes(r gin.IRouter) {
	challenges := r.Group("/challenges")
	{
		challenges.GET("", handlers.ListChallenges)

		protected := challenges.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/mine", handlers.GetMyChallenges)
			protected.POST("/:id/start", handlers.StartChallenge)
			protected.PUT("/:id/progress", handlers.UpdateChallengeProgress)
			protected.POST("/:id/complete", handlers.CompleteChallenge)
		}
	}
}
