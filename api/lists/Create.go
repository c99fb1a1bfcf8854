package lists

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type ListCreate struct {
	Name        string `json:"name" validate:"required"`
	School      string `json:"school"`
	Description string `json:"description"`
}

// Create opens a new list workspace and makes the creator its admin.
func (h *ListsHandler) Create(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var data ListCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := api.Validate(data); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	list := database.List{
		Name:        data.Name,
		School:      data.School,
		Description: data.Description,
	}
	if err := DB.Create(&list).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to create list")
		return
	}

	if err := DB.Model(user).Updates(map[string]interface{}{
		"list_id": list.ID,
		"role":    database.RoleAdmin,
	}).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to assign list owner")
		return
	}

	api.WriteJSON(w, http.StatusCreated, &list)
}
