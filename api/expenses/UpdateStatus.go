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

type ExpenseStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED PAID"`
}

// allowed workflow transitions
var statusTransitions = map[string][]string{
	database.ExpenseStatusPending:  {database.ExpenseStatusApproved, database.ExpenseStatusRejected},
	database.ExpenseStatusApproved: {database.ExpenseStatusPaid},
}

var statusActions = map[string]notifications.Action{
	database.ExpenseStatusApproved: notifications.ExpenseApproved,
	database.ExpenseStatusRejected: notifications.ExpenseRejected,
	database.ExpenseStatusPaid:     notifications.ExpensePaid,
}

// UpdateStatus moves an expense through its workflow. Treasurers and
// admins only; the submitter is notified of the outcome.
func (h *ExpensesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	if !user.IsTreasurer() {
		api.WriteError(w, http.StatusUnauthorized, "only treasurers may change expense statuses")
		return
	}

	var expense database.Expense
	if err := DB.First(&expense, "uuid = ? AND list_id = ?", r.PathValue("expense_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "expense not found")
		return
	}

	var data ExpenseStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := api.Validate(data); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	allowed := false
	for _, next := range statusTransitions[expense.Status] {
		if next == data.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		api.WriteError(w, http.StatusConflict, "invalid status transition")
		return
	}

	if err := DB.Model(&expense).Update("status", data.Status).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to update expense")
		return
	}
	expense.Status = data.Status

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("expense:updated", &expense))
		}
	}
	notifications.Notify(DB, expense.SubmittedById, statusActions[data.Status], "expense", expense.UUID, expense.Title)

	api.WriteJSON(w, http.StatusOK, &expense)
}
