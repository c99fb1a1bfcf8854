package suppliers

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type SupplierUpdate struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
	Phone        *string `json:"phone"`
	Category     *string `json:"category"`
}

func (h *SuppliersHandler) Update(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var supplier database.Supplier
	if err := DB.First(&supplier, "uuid = ? AND list_id = ?", r.PathValue("supplier_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "supplier not found")
		return
	}

	var data SupplierUpdate
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
	if data.Phone != nil {
		updates["phone"] = *data.Phone
	}
	if data.Category != nil {
		updates["category"] = *data.Category
	}

	if len(updates) > 0 {
		if err := DB.Model(&supplier).Updates(updates).Error; err != nil {
			api.WriteError(w, http.StatusInternalServerError, "unable to update supplier")
			return
		}
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("supplier:updated", &supplier))
		}
	}

	api.WriteJSON(w, http.StatusOK, &supplier)
}
