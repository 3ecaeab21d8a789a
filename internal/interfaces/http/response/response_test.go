package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return rec
}

func TestSuccess(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Success(c, http.StatusCreated, gin.H{"ok": true})
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestError_AppError(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Error(c, domainerrors.NotFound("speaker not found"))
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "speaker not found")
}

func TestError_SentinelMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domainerrors.ErrNotFound, http.StatusNotFound},
		{domainerrors.ErrAlreadyExists, http.StatusConflict},
		{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{domainerrors.ErrSessionExpired, http.StatusUnauthorized},
		{domainerrors.ErrForbidden, http.StatusForbidden},
		{domainerrors.ErrFileTooLarge, http.StatusBadRequest},
		{domainerrors.ErrNotAnImage, http.StatusBadRequest},
		{domainerrors.ErrUnknownBucket, http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := record(func(c *gin.Context) { Error(c, tc.err) })
		assert.Equal(t, tc.status, rec.Code, "error %v", tc.err)
	}
}

func TestError_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("%w: file size must be less than 50KB", domainerrors.ErrFileTooLarge)
	rec := record(func(c *gin.Context) { Error(c, wrapped) })
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "50KB")
}
