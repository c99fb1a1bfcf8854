package sponsors

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *SponsorsHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	api.WriteJSON(w, http.StatusOK, &sponsor)
}
