package partners

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type PartnerUpdate struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
	Website      *string `json:"website"`
	Tier         *string `json:"tier"`
}

func (h *PartnersHandler) Update(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var partner database.Partner
	if err := DB.First(&partner, "uuid = ? AND list_id = ?", r.PathValue("partner_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "partner not found")
		return
	}

	var data PartnerUpdate
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
	if data.ContactEmail != nil {
		updates["contact_email"] = *data.ContactEmail
	}
	if data.Website != nil {
		updates["website"] = *data.Website
	}
	if data.Tier != nil {
		updates["tier"] = *data.Tier
	}

	if len(updates) > 0 {
		if err := DB.Model(&partner).Updates(updates).Error; err != nil {
			api.WriteError(w, http.StatusInternalServerError, "unable to update partner")
			return
		}
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("partner:updated", &partner))
		}
	}

	api.WriteJSON(w, http.StatusOK, &partner)
}
