package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/interfaces/http/middleware"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/interfaces/http/response"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/usecases"
)

type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Login authenticates an admin and returns a session token.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Logout ends the current session.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("no active session"))
		return
	}

	if err := h.authUsecase.Logout(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the session behind the presented token.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("no active session"))
		return
	}

	session, err := h.authUsecase.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": session})
}
