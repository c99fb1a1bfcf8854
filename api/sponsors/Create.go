package sponsors

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type SponsorCreate struct {
	Name         string  `json:"name" validate:"required"`
	Amount       float64 `json:"amount" validate:"omitempty,gte=0"`
	ContactEmail string  `json:"contact_email" validate:"omitempty,email"`
	Status       string  `json:"status"`
}

func (h *SponsorsHandler) Create(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var data SponsorCreate
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

	sponsor := database.Sponsor{
		ListId:       list.ID,
		Name:         data.Name,
		Amount:       data.Amount,
		ContactEmail: data.ContactEmail,
		Status:       data.Status,
	}
	if err := DB.Create(&sponsor).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to create sponsor")
		return
	}

	if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
		broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("sponsor:created", &sponsor))
	}

	api.WriteJSON(w, http.StatusCreated, &sponsor)
}
