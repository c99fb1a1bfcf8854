package scheduler

import (
	"campusflow/api/notifications"
	"campusflow/api/realtime"
	"campusflow/database"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Task represents a scheduled task
type Task struct {
	Name        string
	Description string
	Schedule    string
	Enabled     bool
	Handler     func() error
}

// ReminderTasks returns tasks that write reminder notifications.
func ReminderTasks(DB *gorm.DB, broadcaster *realtime.Broadcaster) []Task {
	return []Task{
		{
			Name:        "event_reminders",
			Description: "Notify ticket holders of events starting within 24 hours",
			Schedule:    "0 * * * *", // hourly
			Enabled:     true,
			Handler: func() error {
				return sendEventReminders(DB, broadcaster)
			},
		},
	}
}

// DataMaintenanceTasks returns tasks related to data maintenance
func DataMaintenanceTasks(DB *gorm.DB) []Task {
	return []Task{
		{
			Name:        "prune_read_notifications",
			Description: "Remove read notifications older than 30 days",
			Schedule:    "0 4 * * *", // 4 AM every day
			Enabled:     true,
			Handler: func() error {
				cutoff := time.Now().AddDate(0, 0, -30)
				result := DB.Where("read = ? AND created_at < ?", true, cutoff).Delete(&database.Notification{})
				if result.Error != nil {
					return result.Error
				}
				log.Info().Int64("pruned", result.RowsAffected).Msg("pruned read notifications")
				return nil
			},
		},
	}
}

// sendEventReminders writes one event_reminder notification per ticket of a
// published event starting within the next 24 hours, at most once per
// ticket. The event's list room also gets an event:reminder broadcast.
func sendEventReminders(DB *gorm.DB, broadcaster *realtime.Broadcaster) error {
	now := time.Now()
	horizon := now.Add(24 * time.Hour)

	var events []database.Event
	if err := DB.Where("status = ? AND starts_at BETWEEN ? AND ?", database.EventStatusPublished, now, horizon).Find(&events).Error; err != nil {
		return err
	}

	for _, event := range events {
		var tickets []database.Ticket
		if err := DB.Where("event_id = ? AND status = ? AND reminder_sent_at IS NULL", event.ID, database.TicketStatusValid).Find(&tickets).Error; err != nil {
			return err
		}

		reminded := 0
		for _, ticket := range tickets {
			if err := notifications.Notify(DB, ticket.UserId, notifications.EventReminder, "event", event.UUID, event.Title); err != nil {
				log.Error().Err(err).Str("ticket", ticket.UUID).Msg("unable to write event reminder")
				continue
			}
			DB.Model(&ticket).Update("reminder_sent_at", &now)
			reminded++
		}

		if reminded > 0 && broadcaster != nil {
			var list database.List
			if err := DB.First(&list, "id = ?", event.ListId).Error; err == nil {
				broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("event:reminder", &event))
			}
		}
	}

	return nil
}
