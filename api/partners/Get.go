package partners

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *PartnersHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	api.WriteJSON(w, http.StatusOK, &partner)
}
