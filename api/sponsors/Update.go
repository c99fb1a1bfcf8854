package sponsors

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type SponsorUpdate struct {
	Name         *string  `json:"name"`
	Amount       *float64 `json:"amount"`
	ContactEmail *string  `json:"contact_email"`
	Status       *string  `json:"status"`
}

func (h *SponsorsHandler) Update(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var sponsor database.Sponsor
	if err := DB.First(&sponsor, "uuid = ? AND list_id = ?", r.PathValue("sponsor_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "sponsor not found")
		return
	}

	var data SponsorUpdate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	updates := map[string]interface{}{}
	if data.Name != nil {
		if *data.Name == "" {
			api.WriteError(w, http.StatusBadRequest, "missing required field: name")
			return
		}
		updates["name"] = *data.Name
	}
	if data.Amount != nil {
		updates["amount"] = *data.Amount
	}
	if data.ContactEmail != nil {
		updates["contact_email"] = *data.ContactEmail
	}
	if data.Status != nil {
		updates["status"] = *data.Status
	}

	if len(updates) > 0 {
		if err := DB.Model(&sponsor).Updates(updates).Error; err != nil {
			api.WriteError(w, http.StatusInternalServerError, "unable to update sponsor")
			return
		}
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("sponsor:updated", &sponsor))
		}
	}

	api.WriteJSON(w, http.StatusOK, &sponsor)
}
