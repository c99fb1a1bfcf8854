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

type EventCreate struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    *time.Time `json:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at"`
	Capacity    int        `json:"capacity"`
	Price       float64    `json:"price"`
	Status      string     `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED CANCELLED"`
	PoleUUID    string     `json:"pole_uuid"`
}

// Create persists a new event in the user's list. Status defaults to DRAFT
// when omitted. Other members are notified and the list room gets an
// event:created broadcast.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var data EventCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := api.Validate(data); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := util.GetUserList(DB, user)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := data.Status
	if status == "" {
		status = database.EventStatusDraft
	}

	event := database.Event{
		ListId:      list.ID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		StartsAt:    *data.StartsAt,
		EndsAt:      data.EndsAt,
		Capacity:    data.Capacity,
		Price:       data.Price,
		Status:      status,
		CreatedById: user.ID,
	}

	if data.PoleUUID != "" {
		var pole database.Pole
		if err := DB.First(&pole, "uuid = ? AND list_id = ?", data.PoleUUID, list.ID).Error; err != nil {
			api.WriteError(w, http.StatusNotFound, "pole not found")
			return
		}
		event.PoleId = &pole.ID
	}

	if err := DB.Create(&event).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to create event")
		return
	}

	if broadcaster, err := util.GetBroadcaster(r); err == nil {
		broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("event:created", &event))
	}
	notifications.NotifyAllMembers(DB, list.ID, user.ID, notifications.EventCreated, "event", event.UUID, event.Title)

	api.WriteJSON(w, http.StatusCreated, &event)
}
