package poles

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *PolesHandler) List(w http.ResponseWriter, r *http.Request) {
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

	var poles []database.Pole
	if err := DB.Where("list_id = ?", list.ID).Order("name ASC").Find(&poles).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to list poles")
		return
	}

	api.WriteJSON(w, http.StatusOK, poles)
}
