package tickets

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
	"time"
)

type TicketCheckIn struct {
	Token string `json:"token" validate:"required"`
}

// CheckIn validates a presented QR token and marks the ticket USED.
// The MAC is recomputed against the stored ticket; a format-valid token
// with a wrong prefix is rejected. Checking in twice is a conflict.
func (h *TicketsHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var data TicketCheckIn
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := api.Validate(data); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ticketUUID, _, err := ParseToken(data.Token)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var ticket database.Ticket
	if err := DB.Preload("Event").Preload("User").First(&ticket, "uuid = ?", ticketUUID).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "ticket not found")
		return
	}

	if ticket.Event.ListId != user.ListId {
		api.WriteError(w, http.StatusNotFound, "ticket not found")
		return
	}

	if err := VerifyToken(h.Secret, data.Token, ticket.UUID, ticket.Event.UUID, ticket.User.UUID); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch ticket.Status {
	case database.TicketStatusUsed:
		api.WriteError(w, http.StatusConflict, "ticket already checked in")
		return
	case database.TicketStatusCancelled:
		api.WriteError(w, http.StatusConflict, "ticket was cancelled")
		return
	}

	now := time.Now()
	if err := DB.Model(&ticket).Updates(map[string]interface{}{
		"status":        database.TicketStatusUsed,
		"checked_in_at": &now,
	}).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to check in ticket")
		return
	}
	ticket.Status = database.TicketStatusUsed
	ticket.CheckedInAt = &now

	var eventList database.List
	if err := DB.First(&eventList, "id = ?", ticket.Event.ListId).Error; err == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(eventList.UUID), realtime.EntityEvent("ticket:updated", &ticket))
		}
	}

	api.WriteJSON(w, http.StatusOK, &ticket)
}
