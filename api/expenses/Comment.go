package expenses

import (
	"campusflow/api"
	"campusflow/api/notifications"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"
)

type CommentCreate struct {
	Body string `json:"body" validate:"required"`
}

// Comment posts a comment on an expense and notifies the submitter,
// unless they wrote the comment themselves.
func (h *ExpensesHandler) Comment(w http.ResponseWriter, r *http.Request) {
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

	var data CommentCreate
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := api.Validate(data); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	comment := database.ExpenseComment{
		ExpenseId: expense.ID,
		AuthorId:  user.ID,
		Body:      data.Body,
	}
	if err := DB.Create(&comment).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to create comment")
		return
	}
	comment.Author = *user

	if expense.SubmittedById != user.ID {
		notifications.Notify(DB, expense.SubmittedById, notifications.CommentPosted, "expense", expense.UUID, expense.Title)
	}

	api.WriteJSON(w, http.StatusCreated, &comment)
}

// ListComments returns the comment thread of an expense, oldest first.
func (h *ExpensesHandler) ListComments(w http.ResponseWriter, r *http.Request) {
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

	var comments []database.ExpenseComment
	if err := DB.Where("expense_id = ?", expense.ID).Preload("Author").Order("created_at ASC").Find(&comments).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to list comments")
		return
	}

	api.WriteJSON(w, http.StatusOK, comments)
}
