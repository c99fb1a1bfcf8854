package events

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := DB.Delete(&event).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to delete event")
		return
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("event:deleted", &event))
		}
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"deleted": event.UUID})
}
