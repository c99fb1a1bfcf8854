package user

import (
	"campusflow/api"
	"net/http"
)

// Logout destroys the session by expiring the cookie. There is nothing to
// invalidate server-side.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, api.ClearSessionCookie())

	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
