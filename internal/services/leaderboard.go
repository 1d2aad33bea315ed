package services

import (
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/config"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/pkg/logger"
)

type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	City        string  `json:"city"`
	AvgEmission float64 `json:"avgEmission"`
	RecordCount int     `json:"recordCount"`
}

const leaderboardCacheKey = "leaderboard:global"

// In-process cache used when Redis is unavailable.
type cachedLeaderboard struct {
	Entries   []LeaderboardEntry
	ExpiresAt time.Time
}

var (
	lbCache cachedLeaderboard
	lbMutex sync.RWMutex
)

// ComputeLeaderboard groups records by user, averages emissions, joins
// the user directory for display fields and sorts ascending (lower
// average = better rank). Users without records get no entry. Ties on
// average emission break by userID ascending so the order is
// deterministic for a fixed input set.
func ComputeLeaderboard(records []models.CarbonRecord, users []models.User) []LeaderboardEntry {
	byUser := make(map[string]*LeaderboardEntry)
	totals := make(map[string]float64)

	userDir := make(map[string]models.User, len(users))
	for _, u := range users {
		userDir[u.ID] = u
	}

	for _, r := range records {
		entry := byUser[r.UserID]
		if entry == nil {
			u := userDir[r.UserID]
			username, city := u.Username, u.City
			if username == "" {
				username = "Unknown"
			}
			entry = &LeaderboardEntry{UserID: r.UserID, Username: username, City: city}
			byUser[r.UserID] = entry
		}
		totals[r.UserID] += r.Emission
		entry.RecordCount++
	}

	entries := make([]LeaderboardEntry, 0, len(byUser))
	for id, entry := range byUser {
		entry.AvgEmission = totals[id] / float64(entry.RecordCount)
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AvgEmission != entries[j].AvgEmission {
			return entries[i].AvgEmission < entries[j].AvgEmission
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// GetLeaderboard returns the cached global leaderboard, recomputing from
// the full record set on miss. Redis is checked first, then the
// in-process TTL cache.
func GetLeaderboard(db *gorm.DB) ([]LeaderboardEntry, error) {
	var cached []LeaderboardEntry
	if err := database.CacheGet(leaderboardCacheKey, &cached); err == nil {
		return cached, nil
	}

	lbMutex.RLock()
	if lbCache.Entries != nil && time.Now().Before(lbCache.ExpiresAt) {
		entries := lbCache.Entries
		lbMutex.RUnlock()
		return entries, nil
	}
	lbMutex.RUnlock()

	var records []models.CarbonRecord
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}

	entries := ComputeLeaderboard(records, users)

	ttl := time.Duration(config.AppConfig.LeaderboardCacheTTLSeconds) * time.Second
	if err := database.CacheSet(leaderboardCacheKey, entries, ttl); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache leaderboard in Redis")
	}
	lbMutex.Lock()
	lbCache = cachedLeaderboard{Entries: entries, ExpiresAt: time.Now().Add(ttl)}
	lbMutex.Unlock()

	return entries, nil
}

// InvalidateLeaderboard drops both cache layers; called on every new
// carbon record.
func InvalidateLeaderboard() {
	if err := database.CacheInvalidate(leaderboardCacheKey); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate leaderboard cache")
	}
	lbMutex.Lock()
	lbCache = cachedLeaderboard{}
	lbMutex.Unlock()
}
