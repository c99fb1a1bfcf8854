package poles

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type PoleCreate struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
}

func (h *PolesHandler) Create(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var data PoleCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := api.Validate(data); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := util.GetUserList(DB, user)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	pole := database.Pole{
		ListId:      list.ID,
		Name:        data.Name,
		Description: data.Description,
		Budget:      data.Budget,
	}
	if err := DB.Create(&pole).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to create pole")
		return
	}

	if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
		broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("pole:created", &pole))
	}

	api.WriteJSON(w, http.StatusCreated, &pole)
}
