package expenses

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

// List returns the expenses of the user's list, newest first.
// `?status=` filters by workflow status.
func (h *ExpensesHandler) List(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	list, err := util.GetUserList(DB, user)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := DB.Where("list_id = ?", list.ID).
		Preload("SubmittedBy").Preload("Pole").Preload("Supplier").
		Order("created_at DESC")
	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var expenses []database.Expense
	if err := q.Find(&expenses).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to list expenses")
		return
	}

	api.WriteJSON(w, http.StatusOK, expenses)
}

// Get returns one expense with its related records expanded.
func (h *ExpensesHandler) Get(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var expense database.Expense
	if err := DB.Preload("SubmittedBy").Preload("Pole").Preload("Supplier").Preload("Document").
		First(&expense, "uuid = ? AND list_id = ?", r.PathValue("expense_uuid"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "expense not found")
		return
	}

	api.WriteJSON(w, http.StatusOK, &expense)
}
