package suppliers

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

func (h *SuppliersHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := DB.Delete(&supplier).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to delete supplier")
		return
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("supplier:deleted", &supplier))
		}
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"deleted": supplier.UUID})
}
