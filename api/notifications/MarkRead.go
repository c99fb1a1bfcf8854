package notifications

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

// MarkRead flips the read flag of one of the current user's notifications.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var notification database.Notification
	if err := DB.First(&notification, "uuid = ? AND user_id = ?", r.PathValue("notification_uuid"), user.ID).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "notification not found")
		return
	}

	if err := DB.Model(&notification).Update("read", true).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to update notification")
		return
	}

	api.WriteJSON(w, http.StatusOK, &notification)
}

// MarkAllRead flips the read flag of every unread notification of the user.
func (h *NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	result := DB.Model(&database.Notification{}).
		Where("user_id = ? AND read = ?", user.ID, false).
		Update("read", true)
	if result.Error != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to update notifications")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]int64{"updated": result.RowsAffected})
}
