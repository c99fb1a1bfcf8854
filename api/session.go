package api

import (
	"campusflow/database"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

const SessionCookieName = "session"

// SessionMaxAge is how long a session cookie stays valid. There is no
// server-side session table; the cookie value is the user identifier and
// expiry is enforced by the cookie max-age alone.
const SessionMaxAge = 7 * 24 * time.Hour

func requestIsSecure(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	if strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		return true
	}
	if strings.EqualFold(r.Header.Get("X-Forwarded-Ssl"), "on") {
		return true
	}
	return false
}

// CreateSessionCookie builds the session cookie for a logged-in user.
func CreateSessionCookie(r *http.Request, userID uint) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    strconv.FormatUint(uint64(userID), 10),
		Path:     "/",
		MaxAge:   int(SessionMaxAge.Seconds()),
		Expires:  time.Now().Add(SessionMaxAge),
		Secure:   requestIsSecure(r),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie returns an expired cookie that destroys the session.
func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ReadSession resolves the session cookie to a user. A missing or invalid
// cookie always degrades to nil ("no session"), never to an error.
func ReadSession(r *http.Request, DB *gorm.DB) *database.User {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	userID, err := strconv.ParseUint(cookie.Value, 10, 64)
	if err != nil {
		return nil
	}

	var user database.User
	if q := DB.First(&user, "id = ?", uint(userID)); q.Error != nil {
		return nil
	}
	return &user
}
