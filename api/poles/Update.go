package poles

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type PoleUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget"`
}

func (h *PolesHandler) Update(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var pole database.Pole
	if err := DB.First(&pole, "uuid = ? AND list_id = ?", r.PathValue("pole_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "pole not found")
		return
	}

	var data PoleUpdate
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
	if data.Description != nil {
		updates["description"] = *data.Description
	}
	if data.Budget != nil {
		updates["budget"] = *data.Budget
	}

	if len(updates) > 0 {
		if err := DB.Model(&pole).Updates(updates).Error; err != nil {
			api.WriteError(w, http.StatusInternalServerError, "unable to update pole")
			return
		}
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("pole:updated", &pole))
		}
	}

	api.WriteJSON(w, http.StatusOK, &pole)
}
