package handlers

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/config"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/services"
)

var testDBCounter int64

// SetupTestDB initializes a fresh in-memory SQLite DB for a handler test
// and points the package globals at it.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret:                  "test_secret_key_12345",
		LeaderboardCacheTTLSeconds: 30,
	}

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.CarbonRecord{},
		&models.Insight{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.CommunityPost{},
		&models.PostComment{},
		&models.PostLike{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	database.DB = db
	database.Redis = nil
	services.InvalidateLeaderboard()

	return db
}

func createTestUser(t *testing.T, username string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		City:     "Testville",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}
