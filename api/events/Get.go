package events

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var event database.Event
	if err := DB.Preload("Pole").First(&event, "uuid = ? AND list_id = ?", r.PathValue("event_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "event not found")
		return
	}

	api.WriteJSON(w, http.StatusOK, &event)
}
