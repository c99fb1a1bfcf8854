package user

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserLogin struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login checks the credentials and hands out the session cookie. The error
// message is the same for a wrong password and an unknown address.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	const defaultErrorMessage = "invalid email or password"

	DB, err := util.GetDB(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database")
		return
	}

	var data UserLogin
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := api.Validate(data); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := LoginUser(DB, data.Email, data.Password)
	if err != nil {
		api.WriteError(w, http.StatusUnauthorized, defaultErrorMessage)
		return
	}

	http.SetCookie(w, api.CreateSessionCookie(r, user.ID))
	w.Header().Add("Cache-Control", `no-cache="Set-Cookie"`)

	api.WriteJSON(w, http.StatusOK, user)
}

func LoginUser(DB *gorm.DB, email string, password string) (*database.User, error) {
	var user database.User
	if q := DB.First(&user, "email = ?", email); q.Error != nil {
		return nil, q.Error
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}

	return &user, nil
}
