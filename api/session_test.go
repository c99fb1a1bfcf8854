package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campusflow/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSessionCookie(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/user/login", nil)
	cookie := CreateSessionCookie(r, 42)

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "42", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(SessionMaxAge.Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
}

func TestCreateSessionCookieSecureBehindProxy(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/user/login", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	assert.True(t, CreateSessionCookie(r, 1).Secure)

	r = httptest.NewRequest("POST", "/api/v1/user/login", nil)
	r.Header.Set("X-Forwarded-Ssl", "on")
	assert.True(t, CreateSessionCookie(r, 1).Secure)
}

func TestClearSessionCookie(t *testing.T) {
	cookie := ClearSessionCookie()
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestReadSession(t *testing.T) {
	DB := database.SetupDatabase("sqlite", ":memory:", "", false)
	user, err := database.RegisterUser(DB, "Test User", "user@test.local", []byte("password"), database.RoleMember, 0)
	require.NoError(t, err)

	t.Run("valid cookie", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/user/self", nil)
		r.AddCookie(CreateSessionCookie(r, user.ID))

		got := ReadSession(r, DB)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("no cookie", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/user/self", nil)
		assert.Nil(t, ReadSession(r, DB))
	})

	t.Run("non-numeric value", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/user/self", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-number"})
		assert.Nil(t, ReadSession(r, DB))
	})

	t.Run("unknown user", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/user/self", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "99999"})
		assert.Nil(t, ReadSession(r, DB))
	})
}
