package sponsors

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *SponsorsHandler) List(w http.ResponseWriter, r *http.Request) {
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

	var sponsors []database.Sponsor
	if err := DB.Where("list_id = ?", list.ID).Order("name ASC").Find(&sponsors).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to list sponsors")
		return
	}

	api.WriteJSON(w, http.StatusOK, sponsors)
}
