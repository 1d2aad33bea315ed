package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostStatus string

const (
	PostStatusLive     PostStatus = "LIVE"
	PostStatusPending  PostStatus = "PENDING" // moderation action was "review"
	PostStatusRejected PostStatus = "REJECTED"
)

type CommunityPost struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AuthorID string `gorm:"index;type:text;not null" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`

	Title   string `json:"title"`
	Content string `gorm:"type:text" json:"content"`

	LikesCount int        `gorm:"default:0" json:"likesCount"`
	Status     PostStatus `gorm:"type:text;default:'LIVE'" json:"status"`

	Comments []PostComment `gorm:"foreignKey:PostID" json:"comments"`
}

type PostComment struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	PostID string        `gorm:"index;type:text;not null" json:"postId"`
	Post   CommunityPost `gorm:"foreignKey:PostID" json:"-"`

	AuthorID string `gorm:"type:text;not null" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`

	Content string `gorm:"type:text" json:"content"`
}

// PostLike records a like toggle; the unique index keeps one row per
// (user, post) pair.
type PostLike struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID string `gorm:"uniqueIndex:idx_user_post_like;type:text;not null" json:"userId"`
	PostID string `gorm:"uniqueIndex:idx_user_post_like;type:text;not null" json:"postId"`
}

func (p *CommunityPost) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (c *PostComment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (l *PostLike) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}
