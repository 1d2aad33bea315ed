package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/config"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory SQLite DB per test. The named DSN
// keeps the DB alive across pooled connections within the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTSecret:                  "test_secret_key_12345",
		LeaderboardCacheTTLSeconds: 30,
	}

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", n)
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
		&models.Notification{},
	); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	database.DB = db
	database.Redis = nil
	InvalidateLeaderboard()

	return db
}
