package lists

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type ListUpdate struct {
	Name        *string `json:"name"`
	School      *string `json:"school"`
	Description *string `json:"description"`
}

// Update edits the current user's list workspace. Admins only.
func (h *ListsHandler) Update(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	if user.Role != database.RoleAdmin {
		api.WriteError(w, http.StatusUnauthorized, "only admins may edit the list")
		return
	}

	list, err := util.GetUserList(DB, user)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	var data ListUpdate
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
	if data.School != nil {
		updates["school"] = *data.School
	}
	if data.Description != nil {
		updates["description"] = *data.Description
	}

	if len(updates) > 0 {
		if err := DB.Model(list).Updates(updates).Error; err != nil {
			api.WriteError(w, http.StatusInternalServerError, "unable to update list")
			return
		}
	}

	api.WriteJSON(w, http.StatusOK, list)
}
