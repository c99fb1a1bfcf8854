package tickets

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

// List returns the tickets of one event of the user's list.
func (h *TicketsHandler) List(w http.ResponseWriter, r *http.Request) {
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

	var tickets []database.Ticket
	if err := DB.Where("event_id = ?", event.ID).Preload("User").Order("created_at ASC").Find(&tickets).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to list tickets")
		return
	}

	api.WriteJSON(w, http.StatusOK, tickets)
}

// Get returns one ticket with its event and holder expanded.
func (h *TicketsHandler) Get(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var ticket database.Ticket
	if err := DB.Preload("Event").Preload("User").First(&ticket, "uuid = ?", r.PathValue("ticket_uuid")).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "ticket not found")
		return
	}

	// tickets of other lists do not exist as far as the caller is concerned
	if ticket.Event.ListId != user.ListId {
		api.WriteError(w, http.StatusNotFound, "ticket not found")
		return
	}

	api.WriteJSON(w, http.StatusOK, &ticket)
}
