package suppliers

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type SupplierCreate struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Category     string `json:"category"`
}

func (h *SuppliersHandler) Create(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var data SupplierCreate
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

	supplier := database.Supplier{
		ListId:       list.ID,
		Name:         data.Name,
		ContactEmail: data.ContactEmail,
		Phone:        data.Phone,
		Category:     data.Category,
	}
	if err := DB.Create(&supplier).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to create supplier")
		return
	}

	if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
		broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("supplier:created", &supplier))
	}

	api.WriteJSON(w, http.StatusCreated, &supplier)
}
