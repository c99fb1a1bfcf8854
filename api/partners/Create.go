package partners

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type PartnerCreate struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Website      string `json:"website"`
	Tier         string `json:"tier"`
}

func (h *PartnersHandler) Create(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var data PartnerCreate
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

	partner := database.Partner{
		ListId:       list.ID,
		Name:         data.Name,
		ContactEmail: data.ContactEmail,
		Website:      data.Website,
		Tier:         data.Tier,
	}
	if err := DB.Create(&partner).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to create partner")
		return
	}

	if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
		broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("partner:created", &partner))
	}

	api.WriteJSON(w, http.StatusCreated, &partner)
}
