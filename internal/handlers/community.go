package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/services"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/utils"
)

type createPostInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type createCommentInput struct {
	Content string `json:"content" binding:"required"`
}

// ListPosts GET /community/posts?q=...
// Anonymous callers see live posts only; an authenticated author also
// sees their own posts that are still pending review.
func ListPosts(c *gin.Context) {
	query := database.DB.Preload("Author").Preload("Comments.Author")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := utils.SanitizeSearchQuery(q)
		// LOWER + explicit ESCAPE so matching behaves the same on
		// Postgres and the sqlite test databases.
		query = query.Where("LOWER(title) LIKE LOWER(?) ESCAPE '\\' OR LOWER(content) LIKE LOWER(?) ESCAPE '\\'", pattern, pattern)
	}

	if userID, authenticated := c.Get("userId"); authenticated {
		query = query.Where("status = ? OR (status = ? AND author_id = ?)",
			models.PostStatusLive, models.PostStatusPending, userID)
	} else {
		query = query.Where("status = ?", models.PostStatusLive)
	}

	var posts []models.CommunityPost
	if err := query.Order("created_at desc").Limit(50).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost POST /community/posts
// Title and content are sanitized, then moderated as one text; a reject
// verdict blocks creation, a review verdict stores the post as pending.
func CreatePost(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input createPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := services.Sanitize(input.Title)
	content := services.Sanitize(input.Content)

	verdict := services.Moderate(title + "\n" + content)
	if verdict.Action == services.ActionReject {
		logger.Warn().
			Str("user_id", userID.(string)).
			Strs("flags", verdict.Flags).
			Msg("Post rejected by moderation")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "Post rejected by content moderation",
			"moderation": verdict,
		})
		return
	}

	status := models.PostStatusLive
	if verdict.Action == services.ActionReview {
		status = models.PostStatusPending
	}

	post := models.CommunityPost{
		AuthorID: userID.(string),
		Title:    title,
		Content:  content,
		Status:   status,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	database.DB.Preload("Author").First(&post, "id = ?", post.ID)

	c.JSON(http.StatusCreated, gin.H{
		"post":       post,
		"moderation": verdict,
	})
}

// CreateComment POST /community/posts/:id/comments
func CreateComment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	postID := c.Param("id")

	var post models.CommunityPost
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var input createCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := services.Sanitize(input.Content)

	verdict := services.Moderate(content)
	if verdict.Action == services.ActionReject {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "Comment rejected by content moderation",
			"moderation": verdict,
		})
		return
	}

	comment := models.PostComment{
		PostID:   postID,
		AuthorID: userID.(string),
		Content:  content,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	database.DB.Preload("Author").First(&comment, "id = ?", comment.ID)

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// ToggleLike POST /community/posts/:id/like
// Creates or removes the user's like and adjusts the post counter.
func ToggleLike(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	postID := c.Param("id")

	var post models.CommunityPost
	if err := database.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	liked := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var like models.PostLike
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			return tx.Model(&post).Update("likes_count", gorm.Expr("likes_count - 1")).Error
		case err == gorm.ErrRecordNotFound:
			liked = true
			if err := tx.Create(&models.PostLike{UserID: userID.(string), PostID: postID}).Error; err != nil {
				return err
			}
			return tx.Model(&post).Update("likes_count", gorm.Expr("likes_count + 1")).Error
		default:
			return err
		}
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	database.DB.First(&post, "id = ?", postID)
	c.JSON(http.StatusOK, gin.H{
		"liked":      liked,
		"likesCount": post.LikesCount,
	})
}
