package tickets

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type TicketCreate struct {
	EventUUID string `json:"event_uuid" validate:"required"`
	// holder defaults to the current user
	UserUUID string `json:"user_uuid"`
}

// Create issues a ticket for an event and caches the derived QR token on
// the row.
func (h *TicketsHandler) Create(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var data TicketCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := api.Validate(data); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var event database.Event
	if err := DB.First(&event, "uuid = ? AND list_id = ?", data.EventUUID, user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "event not found")
		return
	}

	holder := user
	if data.UserUUID != "" && data.UserUUID != user.UUID {
		var other database.User
		if err := DB.First(&other, "uuid = ? AND list_id = ?", data.UserUUID, user.ListId).Error; err != nil {
			api.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		holder = &other
	}

	if event.Capacity > 0 {
		var issued int64
		DB.Model(&database.Ticket{}).
			Where("event_id = ? AND status <> ?", event.ID, database.TicketStatusCancelled).
			Count(&issued)
		if issued >= int64(event.Capacity) {
			api.WriteError(w, http.StatusConflict, "event is sold out")
			return
		}
	}

	ticket := database.Ticket{
		EventId: event.ID,
		UserId:  holder.ID,
		Status:  database.TicketStatusValid,
	}
	if err := DB.Create(&ticket).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to create ticket")
		return
	}

	token, err := GenerateToken(h.Secret, ticket.UUID, event.UUID, holder.UUID)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to derive ticket token")
		return
	}
	if err := DB.Model(&ticket).Update("qr_token", token).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to store ticket token")
		return
	}
	ticket.QRToken = token
	ticket.Event = event
	ticket.User = *holder

	var eventList database.List
	if err := DB.First(&eventList, "id = ?", event.ListId).Error; err == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(eventList.UUID), realtime.EntityEvent("ticket:created", &ticket))
		}
	}

	api.WriteJSON(w, http.StatusCreated, &ticket)
}
