package lists

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

// Members lists every account belonging to the current user's list.
func (h *ListsHandler) Members(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	list, err := util.GetUserList(DB, user)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	var members []database.User
	if err := DB.Where("list_id = ?", list.ID).Order("name ASC").Find(&members).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to list members")
		return
	}

	api.WriteJSON(w, http.StatusOK, members)
}
