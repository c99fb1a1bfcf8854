package events

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

// List returns the events of the user's list, soonest first.
// `?status=` filters by lifecycle status.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	list, err := util.GetUserList(DB, user)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := DB.Where("list_id = ?", list.ID).Order("starts_at ASC").Preload("Pole")
	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var events []database.Event
	if err := q.Find(&events).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to list events")
		return
	}

	api.WriteJSON(w, http.StatusOK, events)
}
