package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/services"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/utils"
)

// Review queue for posts the moderator held back. Mounted under
// /admin/posts behind the admin middleware.

// ListPendingPosts GET /admin/posts
func ListPendingPosts(c *gin.Context) {
	var posts []models.CommunityPost
	err := database.DB.Preload("Author").
		Where("status = ?", models.PostStatusPending).
		Order("created_at asc").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ApprovePost POST /admin/posts/:id/approve
func ApprovePost(c *gin.Context) {
	resolvePendingPost(c, models.PostStatusLive)
}

// RejectPost POST /admin/posts/:id/reject
func RejectPost(c *gin.Context) {
	resolvePendingPost(c, models.PostStatusRejected)
}

// resolvePendingPost moves a pending post to its terminal status and
// notifies the author. Only pending posts can be resolved.
func resolvePendingPost(c *gin.Context, status models.PostStatus) {
	postID := c.Param("id")

	var post models.CommunityPost
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.Status != models.PostStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Post is not pending review"})
		return
	}

	if err := database.DB.Model(&post).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	title := utils.TruncateString(post.Title, 80)
	if status == models.PostStatusLive {
		services.Notify(database.DB, post.AuthorID, models.NotificationTypeSuccess,
			"Post Approved",
			fmt.Sprintf("Your post %q is now live in the community feed.", title))
	} else {
		services.Notify(database.DB, post.AuthorID, models.NotificationTypeSystem,
			"Post Rejected",
			fmt.Sprintf("Your post %q was rejected after review. Please keep posts on-topic and respectful.", title))
	}

	logger.Info().
		Str("post_id", post.ID).
		Str("status", string(status)).
		Msg("Pending post resolved")

	c.JSON(http.StatusOK, gin.H{"post": post})
}
