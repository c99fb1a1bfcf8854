package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testClient struct {
	t  *testing.T
	ts *httptest.Server
	c  *http.Client
}

func newTestBackend(t *testing.T) (*testClient, *gorm.DB) {
	t.Helper()
	db := database.SetupDatabase("sqlite", ":memory:", "", false)
	router := BackendRouting(db, realtime.NewBroadcaster(), "test-secret", t.TempDir())
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testClient{t: t, ts: ts, c: &http.Client{Jar: jar}}, db
}

func (tc *testClient) do(method, path string, payload interface{}) *http.Response {
	tc.t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(tc.t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, tc.ts.URL+path, &body)
	require.NoError(tc.t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := tc.c.Do(req)
	require.NoError(tc.t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var envelope api.ErrorResponse
	decode(t, resp, &envelope)
	return envelope.Error
}

// register + login + create a list, leaving the client authenticated as the
// list admin
func (tc *testClient) loginAsAdmin(email string) {
	tc.t.Helper()
	resp := tc.do("POST", "/api/v1/user/register", map[string]string{
		"name": "Admin", "email": email, "password": "password123",
	})
	require.Equal(tc.t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = tc.do("POST", "/api/v1/user/login", map[string]string{
		"email": email, "password": "password123",
	})
	require.Equal(tc.t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = tc.do("POST", "/api/v1/lists/create", map[string]string{
		"name": "BDE Info", "school": "ENSI",
	})
	require.Equal(tc.t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestRegisterConflictsOnDuplicateEmail(t *testing.T) {
	tc, db := newTestBackend(t)

	payload := map[string]string{"name": "A", "email": "a@test.local", "password": "password123"}
	resp := tc.do("POST", "/api/v1/user/register", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = tc.do("POST", "/api/v1/user/register", payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "email already in use", errorMessage(t, resp))

	var count int64
	db.Model(&database.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterValidation(t *testing.T) {
	tc, _ := newTestBackend(t)

	resp := tc.do("POST", "/api/v1/user/register", map[string]string{
		"name": "A", "email": "a@test.local",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing required field: password", errorMessage(t, resp))

	resp = tc.do("POST", "/api/v1/user/register", map[string]string{
		"name": "A", "email": "not-an-email", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid email", errorMessage(t, resp))

	resp = tc.do("POST", "/api/v1/user/register", map[string]string{
		"name": "A", "email": "a@test.local", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "password too short", errorMessage(t, resp))
}

func TestLoginErrorsDoNotLeakAccounts(t *testing.T) {
	tc, _ := newTestBackend(t)
	resp := tc.do("POST", "/api/v1/user/register", map[string]string{
		"name": "A", "email": "a@test.local", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = tc.do("POST", "/api/v1/user/login", map[string]string{
		"email": "a@test.local", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	wrongPassword := errorMessage(t, resp)

	resp = tc.do("POST", "/api/v1/user/login", map[string]string{
		"email": "nobody@test.local", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, wrongPassword, errorMessage(t, resp))
}

func TestSessionLifecycle(t *testing.T) {
	tc, _ := newTestBackend(t)

	// private routes reject anonymous requests with the error envelope
	resp := tc.do("GET", "/api/v1/user/self", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NotEmpty(t, errorMessage(t, resp))

	resp = tc.do("POST", "/api/v1/user/register", map[string]string{
		"name": "A", "email": "a@test.local", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = tc.do("POST", "/api/v1/user/login", map[string]string{
		"email": "a@test.local", "password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var sessionCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == api.SessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, sessionCookie.SameSite)

	resp = tc.do("GET", "/api/v1/user/self", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var self struct {
		Email string `json:"email"`
	}
	decode(t, resp, &self)
	assert.Equal(t, "a@test.local", self.Email)

	resp = tc.do("POST", "/api/v1/user/logout", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = tc.do("GET", "/api/v1/user/self", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateListPromotesCreator(t *testing.T) {
	tc, db := newTestBackend(t)
	tc.loginAsAdmin("admin@test.local")

	var user database.User
	require.NoError(t, db.First(&user, "email = ?", "admin@test.local").Error)
	assert.Equal(t, database.RoleAdmin, user.Role)
	assert.NotZero(t, user.ListId)
}

func TestCreateEventDefaultsToDraft(t *testing.T) {
	tc, db := newTestBackend(t)
	tc.loginAsAdmin("admin@test.local")

	resp := tc.do("POST", "/api/v1/events/create", map[string]interface{}{
		"title":     "Welcome party",
		"starts_at": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var event struct {
		UUID   string `json:"uuid"`
		Status string `json:"status"`
	}
	decode(t, resp, &event)
	assert.Equal(t, database.EventStatusDraft, event.Status)
	assert.NotEmpty(t, event.UUID)

	// invalid payloads leave no row behind
	resp = tc.do("POST", "/api/v1/events/create", map[string]interface{}{
		"starts_at": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing required field: title", errorMessage(t, resp))

	var count int64
	db.Model(&database.Event{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestTicketCheckInFlow(t *testing.T) {
	tc, _ := newTestBackend(t)
	tc.loginAsAdmin("admin@test.local")

	resp := tc.do("POST", "/api/v1/events/create", map[string]interface{}{
		"title":     "Concert",
		"starts_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"status":    database.EventStatusPublished,
		"capacity":  1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var event struct {
		UUID string `json:"uuid"`
	}
	decode(t, resp, &event)

	resp = tc.do("POST", "/api/v1/tickets/create", map[string]string{"event_uuid": event.UUID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var ticket struct {
		UUID    string `json:"uuid"`
		QRToken string `json:"qr_token"`
		Status  string `json:"status"`
		Event   struct {
			UUID  string `json:"uuid"`
			Title string `json:"title"`
		} `json:"event"`
		Holder struct {
			Email string `json:"email"`
		} `json:"holder"`
	}
	decode(t, resp, &ticket)
	assert.Equal(t, database.TicketStatusValid, ticket.Status)
	require.NotEmpty(t, ticket.QRToken)
	assert.Equal(t, event.UUID, ticket.Event.UUID)
	assert.Equal(t, "Concert", ticket.Event.Title)
	assert.Equal(t, "admin@test.local", ticket.Holder.Email)

	// capacity 1 means the second ticket is a conflict
	resp = tc.do("POST", "/api/v1/tickets/create", map[string]string{"event_uuid": event.UUID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "event is sold out", errorMessage(t, resp))

	resp = tc.do("POST", "/api/v1/tickets/checkin", map[string]string{"token": ticket.QRToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var checkedIn struct {
		Status      string     `json:"status"`
		CheckedInAt *time.Time `json:"checked_in_at"`
	}
	decode(t, resp, &checkedIn)
	assert.Equal(t, database.TicketStatusUsed, checkedIn.Status)
	assert.NotNil(t, checkedIn.CheckedInAt)

	// checking in again is a conflict
	resp = tc.do("POST", "/api/v1/tickets/checkin", map[string]string{"token": ticket.QRToken})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ticket already checked in", errorMessage(t, resp))

	// a doctored prefix is rejected before any state change
	tampered := fmt.Sprintf("%s:%016x", ticket.UUID, 0)
	resp = tc.do("POST", "/api/v1/tickets/checkin", map[string]string{"token": tampered})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestTicketIssueScopedToList(t *testing.T) {
	tc, db := newTestBackend(t)
	tc.loginAsAdmin("admin-a@test.local")

	resp := tc.do("POST", "/api/v1/events/create", map[string]interface{}{
		"title":     "Private gala",
		"starts_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"status":    database.EventStatusPublished,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var event struct {
		UUID string `json:"uuid"`
	}
	decode(t, resp, &event)

	// a member of another list cannot issue tickets against this event
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	tc.c.Jar = jar
	tc.loginAsAdmin("admin-b@test.local")

	resp = tc.do("POST", "/api/v1/tickets/create", map[string]string{"event_uuid": event.UUID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "event not found", errorMessage(t, resp))

	var count int64
	db.Model(&database.Ticket{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestExpenseWorkflow(t *testing.T) {
	tc, db := newTestBackend(t)
	tc.loginAsAdmin("admin@test.local")

	resp := tc.do("POST", "/api/v1/expenses/create", map[string]interface{}{
		"title":  "Sono rental",
		"amount": 250.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var expense struct {
		UUID   string `json:"uuid"`
		Status string `json:"status"`
	}
	decode(t, resp, &expense)
	assert.Equal(t, database.ExpenseStatusPending, expense.Status)

	// PENDING cannot jump straight to PAID
	resp = tc.do("PUT", "/api/v1/expenses/"+expense.UUID+"/status", map[string]string{"status": database.ExpenseStatusPaid})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = tc.do("PUT", "/api/v1/expenses/"+expense.UUID+"/status", map[string]string{"status": database.ExpenseStatusApproved})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = tc.do("PUT", "/api/v1/expenses/"+expense.UUID+"/status", map[string]string{"status": database.ExpenseStatusPaid})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var row database.Expense
	require.NoError(t, db.First(&row, "uuid = ?", expense.UUID).Error)
	assert.Equal(t, database.ExpenseStatusPaid, row.Status)
}

func TestExpenseStatusRequiresTreasurer(t *testing.T) {
	tc, db := newTestBackend(t)
	tc.loginAsAdmin("admin@test.local")

	resp := tc.do("POST", "/api/v1/expenses/create", map[string]interface{}{
		"title": "Stickers", "amount": 40.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var expense struct {
		UUID string `json:"uuid"`
	}
	decode(t, resp, &expense)

	// demote the account to a plain member
	require.NoError(t, db.Model(&database.User{}).
		Where("email = ?", "admin@test.local").
		Update("role", database.RoleMember).Error)

	resp = tc.do("PUT", "/api/v1/expenses/"+expense.UUID+"/status", map[string]string{"status": database.ExpenseStatusApproved})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	var row database.Expense
	require.NoError(t, db.First(&row, "uuid = ?", expense.UUID).Error)
	assert.Equal(t, database.ExpenseStatusPending, row.Status)
}

func TestStatsSummary(t *testing.T) {
	tc, db := newTestBackend(t)
	tc.loginAsAdmin("admin@test.local")

	resp := tc.do("POST", "/api/v1/events/create", map[string]interface{}{
		"title":     "Gala",
		"starts_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"status":    database.EventStatusPublished,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = tc.do("POST", "/api/v1/expenses/create", map[string]interface{}{
		"title": "Decorations", "amount": 120.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = tc.do("GET", "/api/v1/stats/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary struct {
		Members       int64            `json:"members"`
		Events        map[string]int64 `json:"events"`
		Expenses      map[string]int64 `json:"expenses"`
		PendingAmount float64          `json:"pending_amount"`
	}
	decode(t, resp, &summary)
	assert.EqualValues(t, 1, summary.Members)
	assert.EqualValues(t, 1, summary.Events[database.EventStatusPublished])
	assert.EqualValues(t, 1, summary.Expenses[database.ExpenseStatusPending])
	assert.InDelta(t, 120.5, summary.PendingAmount, 0.001)

	// plain members are shut out
	require.NoError(t, db.Model(&database.User{}).
		Where("email = ?", "admin@test.local").
		Update("role", database.RoleMember).Error)
	resp = tc.do("GET", "/api/v1/stats/summary", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestListScopedEntitiesAreIsolated(t *testing.T) {
	tc, _ := newTestBackend(t)
	tc.loginAsAdmin("admin-a@test.local")

	resp := tc.do("POST", "/api/v1/partners/create", map[string]string{"name": "Pizzeria Luigi"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// a fresh identity in a different list sees nothing
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	tc.c.Jar = jar
	tc.loginAsAdmin("admin-b@test.local")

	resp = tc.do("GET", "/api/v1/partners/list", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var partners []struct {
		Name string `json:"name"`
	}
	decode(t, resp, &partners)
	assert.Empty(t, partners)
}
