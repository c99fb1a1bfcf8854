package events

import (
	"campusflow/api"
	"campusflow/api/notifications"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
	"time"
)

type EventUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Capacity    *int       `json:"capacity"`
	Price       *float64   `json:"price"`
	Status      *string    `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED CANCELLED"`
	PoleUUID    *string    `json:"pole_uuid"`
}

// Update edits an event. Moving the status to CANCELLED switches the
// member notification from event_updated to event_cancelled.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var event database.Event
	if err := DB.First(&event, "uuid = ? AND list_id = ?", r.PathValue("event_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "event not found")
		return
	}

	var data EventUpdate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := api.Validate(data); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if data.Title != nil {
		if *data.Title == "" {
			api.WriteError(w, http.StatusBadRequest, "missing required field: title")
			return
		}
		updates["title"] = *data.Title
	}
	if data.Description != nil {
		updates["description"] = *data.Description
	}
	if data.Location != nil {
		updates["location"] = *data.Location
	}
	if data.StartsAt != nil {
		updates["starts_at"] = *data.StartsAt
	}
	if data.EndsAt != nil {
		updates["ends_at"] = *data.EndsAt
	}
	if data.Capacity != nil {
		updates["capacity"] = *data.Capacity
	}
	if data.Price != nil {
		updates["price"] = *data.Price
	}

	cancelled := false
	if data.Status != nil && *data.Status != event.Status {
		updates["status"] = *data.Status
		cancelled = *data.Status == database.EventStatusCancelled
	}

	if data.PoleUUID != nil {
		if *data.PoleUUID == "" {
			updates["pole_id"] = nil
		} else {
			var pole database.Pole
			if err := DB.First(&pole, "uuid = ? AND list_id = ?", *data.PoleUUID, user.ListId).Error; err != nil {
				api.WriteError(w, http.StatusNotFound, "pole not found")
				return
			}
			updates["pole_id"] = pole.ID
		}
	}

	if len(updates) > 0 {
		if err := DB.Model(&event).Updates(updates).Error; err != nil {
			api.WriteError(w, http.StatusInternalServerError, "unable to update event")
			return
		}
	}

	list, err := util.GetUserList(DB, user)
	if err == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("event:updated", &event))
		}
		action := notifications.EventUpdated
		if cancelled {
			action = notifications.EventCancelled
		}
		notifications.NotifyAllMembers(DB, list.ID, user.ID, action, "event", event.UUID, event.Title)
	}

	api.WriteJSON(w, http.StatusOK, &event)
}
