package user

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"gorm.io/gorm"
)

type UserRegister struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	// optional: join an existing list workspace on registration
	ListUUID string `json:"list_uuid"`
}

// Register creates an account. One account per email; a second registration
// with the same address is a conflict, not a new row.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	DB, err := util.GetDB(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database")
		return
	}

	var data UserRegister
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := api.Validate(data); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := mail.ParseAddress(data.Email); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid email")
		return
	}

	if len(data.Password) < 8 {
		api.WriteError(w, http.StatusBadRequest, "password too short")
		return
	}

	var existing database.User
	if q := DB.First(&existing, "email = ?", data.Email); q.Error == nil {
		api.WriteError(w, http.StatusConflict, "email already in use")
		return
	}

	var listId uint
	if data.ListUUID != "" {
		var list database.List
		if err := DB.First(&list, "uuid = ?", data.ListUUID).Error; err != nil {
			api.WriteError(w, http.StatusNotFound, "list not found")
			return
		}
		listId = list.ID
	}

	user, err := database.RegisterUser(DB, data.Name, data.Email, []byte(data.Password), database.RoleMember, listId)
	if err != nil {
		// the pre-check above can race a concurrent registration; the
		// unique index on email is the authority
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			api.WriteError(w, http.StatusConflict, "email already in use")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteJSON(w, http.StatusCreated, user)
}
