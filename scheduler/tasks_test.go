package scheduler

import (
	"testing"
	"time"

	"campusflow/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedEventWithTicket(t *testing.T, DB *gorm.DB, status string, startsAt time.Time) (database.Event, database.Ticket) {
	t.Helper()

	list := database.List{Name: "BDE Info", School: "ENSI"}
	require.NoError(t, DB.Create(&list).Error)
	user, err := database.RegisterUser(DB, "Holder", "holder@test.local", []byte("password"), database.RoleMember, list.ID)
	require.NoError(t, err)

	event := database.Event{
		ListId:   list.ID,
		Title:    "Gala",
		StartsAt: startsAt,
		Status:   status,
	}
	require.NoError(t, DB.Create(&event).Error)

	ticket := database.Ticket{EventId: event.ID, UserId: user.ID, Status: database.TicketStatusValid}
	require.NoError(t, DB.Create(&ticket).Error)
	return event, ticket
}

func TestSendEventRemindersOncePerTicket(t *testing.T) {
	DB := database.SetupDatabase("sqlite", ":memory:", "", false)
	event, ticket := seedEventWithTicket(t, DB, database.EventStatusPublished, time.Now().Add(2*time.Hour))

	require.NoError(t, sendEventReminders(DB, nil))

	var notification database.Notification
	require.NoError(t, DB.First(&notification, "user_id = ?", ticket.UserId).Error)
	assert.Equal(t, "event_reminder", notification.Type)
	assert.Equal(t, event.UUID, notification.RelatedUUID)

	var refreshed database.Ticket
	require.NoError(t, DB.First(&refreshed, "id = ?", ticket.ID).Error)
	assert.NotNil(t, refreshed.ReminderSentAt)

	// a second run must not write a duplicate
	require.NoError(t, sendEventReminders(DB, nil))
	var count int64
	DB.Model(&database.Notification{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSendEventRemindersSkipsDraftsAndDistantEvents(t *testing.T) {
	DB := database.SetupDatabase("sqlite", ":memory:", "", false)
	event, _ := seedEventWithTicket(t, DB, database.EventStatusDraft, time.Now().Add(2*time.Hour))

	require.NoError(t, sendEventReminders(DB, nil))
	var count int64
	DB.Model(&database.Notification{}).Count(&count)
	assert.EqualValues(t, 0, count)

	// published but outside the 24 hour window
	require.NoError(t, DB.Model(&event).Updates(map[string]interface{}{
		"status":    database.EventStatusPublished,
		"starts_at": time.Now().Add(72 * time.Hour),
	}).Error)

	require.NoError(t, sendEventReminders(DB, nil))
	DB.Model(&database.Notification{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
