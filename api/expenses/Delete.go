package expenses

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

// Delete removes a pending expense. The submitter may withdraw their own,
// treasurers may remove any.
func (h *ExpensesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var expense database.Expense
	if err := DB.First(&expense, "uuid = ? AND list_id = ?", r.PathValue("expense_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "expense not found")
		return
	}

	if expense.SubmittedById != user.ID && !user.IsTreasurer() {
		api.WriteError(w, http.StatusUnauthorized, "not allowed to delete this expense")
		return
	}

	if err := DB.Delete(&expense).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to delete expense")
		return
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("expense:deleted", &expense))
		}
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"deleted": expense.UUID})
}
