package notifications

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *NotificationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := DB.Delete(&notification).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to delete notification")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"deleted": notification.UUID})
}
