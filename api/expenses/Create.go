package expenses

import (
	"campusflow/api"
	"campusflow/api/notifications"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type ExpenseCreate struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	PoleUUID     string  `json:"pole_uuid"`
	SupplierUUID string  `json:"supplier_uuid"`
	DocumentUUID string  `json:"document_uuid"`
}

// Create submits an expense for review. Treasurers of the list are
// notified; the list room gets an expense:created broadcast.
func (h *ExpensesHandler) Create(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var data ExpenseCreate
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

	expense := database.Expense{
		ListId:        list.ID,
		Title:         data.Title,
		Description:   data.Description,
		Amount:        data.Amount,
		Status:        database.ExpenseStatusPending,
		SubmittedById: user.ID,
	}

	if data.PoleUUID != "" {
		var pole database.Pole
		if err := DB.First(&pole, "uuid = ? AND list_id = ?", data.PoleUUID, list.ID).Error; err != nil {
			api.WriteError(w, http.StatusNotFound, "pole not found")
			return
		}
		expense.PoleId = &pole.ID
	}
	if data.SupplierUUID != "" {
		var supplier database.Supplier
		if err := DB.First(&supplier, "uuid = ? AND list_id = ?", data.SupplierUUID, list.ID).Error; err != nil {
			api.WriteError(w, http.StatusNotFound, "supplier not found")
			return
		}
		expense.SupplierId = &supplier.ID
	}
	if data.DocumentUUID != "" {
		var document database.Document
		if err := DB.First(&document, "uuid = ? AND list_id = ?", data.DocumentUUID, list.ID).Error; err != nil {
			api.WriteError(w, http.StatusNotFound, "document not found")
			return
		}
		expense.DocumentId = &document.ID
	}

	if err := DB.Create(&expense).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to create expense")
		return
	}

	if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
		broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("expense:created", &expense))
	}
	notifications.NotifyTreasurers(DB, list.ID, notifications.ExpenseCreated, "expense", expense.UUID, expense.Title)

	api.WriteJSON(w, http.StatusCreated, &expense)
}
