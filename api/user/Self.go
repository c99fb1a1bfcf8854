package user

import (
	"campusflow/api"
	"campusflow/database"
	"net/http"
)

// Self returns the current user's details.
func (h *UserHandler) Self(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value("user").(*database.User)
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	api.WriteJSON(w, http.StatusOK, user) // password_hash is not serialized (database.User)
}
