package suppliers

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *SuppliersHandler) Get(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var supplier database.Supplier
	if err := DB.First(&supplier, "uuid = ? AND list_id = ?", r.PathValue("supplier_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "supplier not found")
		return
	}

	api.WriteJSON(w, http.StatusOK, &supplier)
}
