package poles

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *PolesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var pole database.Pole
	if err := DB.First(&pole, "uuid = ? AND list_id = ?", r.PathValue("pole_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "pole not found")
		return
	}

	if err := DB.Delete(&pole).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to delete pole")
		return
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("pole:deleted", &pole))
		}
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"deleted": pole.UUID})
}
