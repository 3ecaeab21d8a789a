package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/infrastructure/storage"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/interfaces/http/response"
)

type UploadHandler struct {
	store *storage.BucketStore
}

func NewUploadHandler(store *storage.BucketStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload stores a photo or logo in the named bucket and returns its
// public URL. The bucket's size limit is enforced before any bytes
// reach disk.
// POST /api/v1/admin/uploads/:bucket
func (h *UploadHandler) Upload(c *gin.Context) {
	bucket := c.Param("bucket")
	entityID := c.PostForm("entityId")
	if entityID == "" {
		response.Error(c, domainerrors.BadRequest("entityId is required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.store.Upload(bucket, entityID, fileHeader.Filename, contentType, data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "File uploaded",
		"url":     url,
	})
}

// Delete removes a previously uploaded file by its public URL.
// DELETE /api/v1/admin/uploads/:bucket
func (h *UploadHandler) Delete(c *gin.Context) {
	bucket := c.Param("bucket")

	var input struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.store.Delete(bucket, input.URL); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "File deleted"})
}
