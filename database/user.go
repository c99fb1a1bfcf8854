package database

import (
	"net/mail"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleMember    = "member"
	RoleTreasurer = "treasurer"
	RoleAdmin     = "admin"
)

type User struct {
	Model
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"unique"`
	PasswordHash string `json:"-"`
	Role         string `json:"role" gorm:"default:'member'"`
	ListId       uint   `json:"-" gorm:"index"`
}

// IsTreasurer reports whether the user may act on expense statuses.
func (u *User) IsTreasurer() bool {
	return u.Role == RoleTreasurer || u.Role == RoleAdmin
}

func RegisterUser(
	DB *gorm.DB,
	name string,
	email string,
	password []byte,
	role string,
	listId uint,
) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	_, err = mail.ParseAddress(email)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = RoleMember
	}

	var user User = User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		ListId:       listId,
	}

	r := DB.Create(&user)

	if r.Error != nil {
		return nil, r.Error
	}

	return &user, nil
}
