package server

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"campusflow/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// registerMember creates an account in an existing list and logs the client
// in as that account.
func registerMember(t *testing.T, tc *testClient, db *gorm.DB, email string, listID uint) {
	t.Helper()
	resp := tc.do("POST", "/api/v1/user/register", map[string]string{
		"name": "Member", "email": email, "password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, db.Model(&database.User{}).Where("email = ?", email).Update("list_id", listID).Error)

	resp = tc.do("POST", "/api/v1/user/login", map[string]string{
		"email": email, "password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (tc *testClient) upload(filename, mimeType string, content []byte) *http.Response {
	tc.t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	require.NoError(tc.t, err)
	_, err = part.Write(content)
	require.NoError(tc.t, err)
	require.NoError(tc.t, writer.Close())

	req, err := http.NewRequest("POST", tc.ts.URL+"/api/v1/documents/upload", &body)
	require.NoError(tc.t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := tc.c.Do(req)
	require.NoError(tc.t, err)
	return resp
}

func TestDocumentUploadAndDownload(t *testing.T) {
	tc, _ := newTestBackend(t)
	tc.loginAsAdmin("admin@test.local")

	content := []byte("%PDF-1.4 fake receipt")
	resp := tc.upload("receipt.pdf", "application/pdf", content)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var document struct {
		FileID   string `json:"file_id"`
		FileName string `json:"file_name"`
		Size     int64  `json:"size"`
		MIMEType string `json:"mime_type"`
	}
	decode(t, resp, &document)
	assert.NotEmpty(t, document.FileID)
	assert.Equal(t, "receipt.pdf", document.FileName)
	assert.EqualValues(t, len(content), document.Size)
	assert.Equal(t, "application/pdf", document.MIMEType)

	resp = tc.do("GET", "/api/v1/documents/"+document.FileID+"/download", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	got, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestDocumentUploadRejectsDisallowedMIME(t *testing.T) {
	tc, _ := newTestBackend(t)
	tc.loginAsAdmin("admin@test.local")

	resp := tc.upload("script.sh", "application/x-sh", []byte("#!/bin/sh\n"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, errorMessage(t, resp), "not allowed")

	resp = tc.do("GET", "/api/v1/documents/list", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var documents []struct {
		FileID string `json:"file_id"`
	}
	decode(t, resp, &documents)
	assert.Empty(t, documents)
}

func TestDocumentUploadRejectsOversizedFile(t *testing.T) {
	tc, _ := newTestBackend(t)
	tc.loginAsAdmin("admin@test.local")

	oversized := bytes.Repeat([]byte{0x42}, 10<<20+1)
	resp := tc.upload("huge.png", "image/png", oversized)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestDocumentDeleteOwnerOnly(t *testing.T) {
	tc, db := newTestBackend(t)
	tc.loginAsAdmin("admin@test.local")

	resp := tc.upload("logo.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var document struct {
		FileID string `json:"file_id"`
	}
	decode(t, resp, &document)

	// a second member of the same list may not delete it
	var admin database.User
	require.NoError(t, db.First(&admin, "email = ?", "admin@test.local").Error)
	registerMember(t, tc, db, "member@test.local", admin.ListId)

	resp = tc.do("DELETE", "/api/v1/documents/"+document.FileID, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
