package suppliers

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *SuppliersHandler) List(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	list, err := util.GetUserList(DB, user)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var suppliers []database.Supplier
	if err := DB.Where("list_id = ?", list.ID).Order("name ASC").Find(&suppliers).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to list suppliers")
		return
	}

	api.WriteJSON(w, http.StatusOK, suppliers)
}
