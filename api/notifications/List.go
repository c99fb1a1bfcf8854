package notifications

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

// List returns the current user's notifications, newest first.
// `?unread=true` limits the result to unread rows.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	q := DB.Where("user_id = ?", user.ID).Order("created_at DESC")
	if r.URL.Query().Get("unread") == "true" {
		q = q.Where("read = ?", false)
	}

	var notifications []database.Notification
	if err := q.Find(&notifications).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to list notifications")
		return
	}

	api.WriteJSON(w, http.StatusOK, notifications)
}
