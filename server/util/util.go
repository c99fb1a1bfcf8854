package util

import (
	"campusflow/api/realtime"
	"campusflow/database"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

func GetDBAndUser(r *http.Request) (*gorm.DB, *database.User, error) {
	DB, ok := r.Context().Value("db").(*gorm.DB)
	if !ok {
		return nil, nil, errors.New("invalid database")
	}

	user, ok := r.Context().Value("user").(*database.User)
	if !ok {
		return nil, nil, errors.New("invalid user")
	}
	return DB, user, nil
}

func GetDB(r *http.Request) (*gorm.DB, error) {
	DB, ok := r.Context().Value("db").(*gorm.DB)
	if !ok {
		return nil, errors.New("invalid database")
	}
	return DB, nil
}

func GetBroadcaster(r *http.Request) (*realtime.Broadcaster, error) {
	broadcaster, ok := r.Context().Value("broadcaster").(*realtime.Broadcaster)
	if !ok {
		return nil, errors.New("invalid broadcaster")
	}
	return broadcaster, nil
}

// GetUserList resolves the list workspace the current user belongs to.
func GetUserList(DB *gorm.DB, user *database.User) (*database.List, error) {
	if user.ListId == 0 {
		return nil, errors.New("user does not belong to a list")
	}

	var list database.List
	if err := DB.First(&list, "id = ?", user.ListId).Error; err != nil {
		return nil, err
	}
	return &list, nil
}
