package lists

import (
	"campusflow/api"
	"campusflow/server/util"
	"net/http"
)

// Get returns the list workspace the current user belongs to.
func (h *ListsHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	api.WriteJSON(w, http.StatusOK, list)
}
