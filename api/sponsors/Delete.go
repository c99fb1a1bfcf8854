package sponsors

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *SponsorsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var sponsor database.Sponsor
	if err := DB.First(&sponsor, "uuid = ? AND list_id = ?", r.PathValue("sponsor_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "sponsor not found")
		return
	}

	if err := DB.Delete(&sponsor).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to delete sponsor")
		return
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("sponsor:deleted", &sponsor))
		}
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"deleted": sponsor.UUID})
}
