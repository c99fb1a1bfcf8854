package partners

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *PartnersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var partner database.Partner
	if err := DB.First(&partner, "uuid = ? AND list_id = ?", r.PathValue("partner_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "partner not found")
		return
	}

	if err := DB.Delete(&partner).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to delete partner")
		return
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("partner:deleted", &partner))
		}
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"deleted": partner.UUID})
}
