package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/database"
	"github.com/SumanthVRevankar/EcoTracker-Hackathon/internal/models"
)

func TestNotificationsFlow(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "notified")

	for i := 0; i < 3; i++ {
		database.DB.Create(&models.Notification{
			UserID:  user.ID,
			Type:    models.NotificationTypeSystem,
			Title:   "Title",
			Message: "Message",
		})
	}

	c, w := authedContext(t, user.ID, "GET", "/api/notifications/unread-count", nil)
	GetUnreadCount(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":3`)

	var first models.Notification
	database.DB.First(&first, "user_id = ?", user.ID)

	c, w = authedContext(t, user.ID, "PUT", "/api/notifications/"+first.ID+"/read", nil)
	c.Params = gin.Params{{Key: "id", Value: first.ID}}
	MarkNotificationRead(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = authedContext(t, user.ID, "GET", "/api/notifications/unread-count", nil)
	GetUnreadCount(c)
	assert.Contains(t, w.Body.String(), `"count":2`)

	c, w = authedContext(t, user.ID, "PUT", "/api/notifications/read-all", nil)
	MarkAllNotificationsRead(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = authedContext(t, user.ID, "GET", "/api/notifications/unread-count", nil)
	GetUnreadCount(c)
	assert.Contains(t, w.Body.String(), `"count":0`)

	c, w = authedContext(t, user.ID, "GET", "/api/notifications", nil)
	GetNotifications(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Notifications []models.Notification `json:"notifications"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Notifications, 3)
}

func TestMarkNotificationRead_OwnershipEnforced(t *testing.T) {
	SetupTestDB(t)
	owner := createTestUser(t, "notif_owner")
	other := createTestUser(t, "notif_other")

	n := models.Notification{UserID: owner.ID, Type: models.NotificationTypeSuccess, Title: "T", Message: "M"}
	database.DB.Create(&n)

	c, w := authedContext(t, other.ID, "PUT", "/api/notifications/"+n.ID+"/read", nil)
	c.Params = gin.Params{{Key: "id", Value: n.ID}}
	MarkNotificationRead(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
