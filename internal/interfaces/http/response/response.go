package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping domain errors to HTTP status
// codes.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	status := statusFor(err)
	c.JSON(status, gin.H{
		"code":    status,
		"message": err.Error(),
	})
}

// ErrorWithStatus sends an error response with an explicit status
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrLoginFailed),
		errors.Is(err, domainerrors.ErrSessionExpired),
		errors.Is(err, domainerrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrNotAnImage),
		errors.Is(err, domainerrors.ErrFileTooLarge),
		errors.Is(err, domainerrors.ErrUnknownBucket):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
