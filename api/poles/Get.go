package poles

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *PolesHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	api.WriteJSON(w, http.StatusOK, &pole)
}
