package realtime

import (
	"campusflow/api"
	"campusflow/database"
	"net/http"
)

func (b *Broadcaster) Connect(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value("user").(*database.User)
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// Handle the subscription before any other write to the response
	if err := b.Subscribe(w, r, user.UUID); err != nil {
		b.logf("socket connection closed: %v", err)
		return
	}
}
