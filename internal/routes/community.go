package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/handlers"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/middleware"
)

func RegisterCommunityRoutes(r gin.IRouter) {
	community := r.Group("/community")
	{
		community.GET("/posts", middleware.OptionalAuthMiddleware(), handlers.ListPosts)

		protected := community.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.CommunityRateLimit())
		{
			protected.POST("/posts", handlers.CreatePost)
			protected.POST("/posts/:id/comments", handlers.CreateComment)
			protected.POST("/posts/:id/like", handlers.ToggleLike)
		}
	}

	// Moderation review queue.
	admin := r.Group("/admin/posts")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("", handlers.ListPendingPosts)
		admin.POST("/:id/approve", handlers.ApprovePost)
		admin.POST("/:id/reject", handlers.RejectPost)
	}
}
