package documents

import (
	"campusflow/api"
	"campusflow/api/realtime"
	"campusflow/database"
	"campusflow/server/util"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// maxUploadSize is the per-file ceiling enforced on uploads.
const maxUploadSize = 10 << 20 // 10 MB

var allowedMIMETypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// DocumentsHandler stores uploads under UploadDir with randomized names.
type DocumentsHandler struct {
	UploadDir string
}

// Upload accepts one multipart file under the "file" field, enforces the
// size ceiling and the MIME allow-list, writes the file under a random
// name and records its metadata.
func (h *DocumentsHandler) Upload(w http.ResponseWriter, r *http.Request) {
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

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		api.WriteError(w, http.StatusBadRequest, "file exceeds the 10MB limit or form is malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "missing required field: file")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		api.WriteError(w, http.StatusBadRequest, "file exceeds the 10MB limit")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if !allowedMIMETypes[mimeType] {
		api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("file type %q is not allowed", mimeType))
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to prepare upload directory")
		return
	}

	fileID := uuid.New().String()
	storagePath := filepath.Join(h.UploadDir, fileID+filepath.Ext(header.Filename))

	dst, err := os.Create(storagePath)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to store file")
		return
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(storagePath)
		api.WriteError(w, http.StatusInternalServerError, "unable to store file")
		return
	}

	document := database.Document{
		ListId:      list.ID,
		FileID:      fileID,
		FileName:    header.Filename,
		Size:        size,
		MIMEType:    mimeType,
		StoragePath: storagePath,
		OwnerID:     user.ID,
	}
	if err := DB.Create(&document).Error; err != nil {
		os.Remove(storagePath)
		api.WriteError(w, http.StatusInternalServerError, "unable to record file")
		return
	}

	if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
		broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("document:created", &document))
	}

	api.WriteJSON(w, http.StatusCreated, &document)
}

// List returns the documents of the user's list, newest first.
func (h *DocumentsHandler) List(w http.ResponseWriter, r *http.Request) {
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

	var documents []database.Document
	if err := DB.Where("list_id = ?", list.ID).Preload("Owner").Order("created_at DESC").Find(&documents).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to list documents")
		return
	}

	api.WriteJSON(w, http.StatusOK, documents)
}

// GetInfo returns the metadata of one document.
func (h *DocumentsHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var document database.Document
	if err := DB.Preload("Owner").First(&document, "file_id = ? AND list_id = ?", r.PathValue("file_id"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "document not found")
		return
	}

	api.WriteJSON(w, http.StatusOK, &document)
}

// Download serves the stored file inline.
func (h *DocumentsHandler) Download(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var document database.Document
	if err := DB.First(&document, "file_id = ? AND list_id = ?", r.PathValue("file_id"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "document not found")
		return
	}

	if _, err := os.Stat(document.StoragePath); os.IsNotExist(err) {
		api.WriteError(w, http.StatusNotFound, "file not found on disk")
		return
	}

	w.Header().Set("Content-Type", document.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", document.FileName))
	http.ServeFile(w, r, document.StoragePath)
}

// Delete removes a document. Owner only.
func (h *DocumentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	var document database.Document
	if err := DB.First(&document, "file_id = ? AND list_id = ?", r.PathValue("file_id"), user.ListId).Error; err != nil {
		api.WriteError(w, http.StatusNotFound, "document not found")
		return
	}

	if document.OwnerID != user.ID {
		api.WriteError(w, http.StatusUnauthorized, "only the owner may delete a document")
		return
	}

	// disk cleanup failures should not block the database cleanup
	if err := os.Remove(document.StoragePath); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error deleting file from disk: %v\n", err)
	}

	if err := DB.Delete(&document).Error; err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to delete document record")
		return
	}

	if list, lerr := util.GetUserList(DB, user); lerr == nil {
		if broadcaster, berr := util.GetBroadcaster(r); berr == nil {
			broadcaster.PublishToRoom(realtime.RoomForList(list.UUID), realtime.EntityEvent("document:deleted", &document))
		}
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"deleted": document.FileID})
}
