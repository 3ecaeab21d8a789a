package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionIDKey is the context key for the admin session ID
	SessionIDKey = "sessionId"
	// AdminEmailKey is the context key for the admin email
	AdminEmailKey = "adminEmail"
	// AdminRoleKey is the context key for the admin role
	AdminRoleKey = "adminRole"
)

// SessionChecker verifies that a session exists and is inside its
// expiry window.
type SessionChecker interface {
	GetSession(ctx context.Context, sessionID uuid.UUID) (*entities.AdminSession, error)
}

// AdminAuthMiddleware authenticates dashboard requests. The bearer
// token names a session; the session itself must still exist server
// side, so a logout or expiry invalidates tokens immediately.
func AdminAuthMiddleware(jwtService *jwt.JWTService, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		session, err := sessions.GetSession(c.Request.Context(), claims.SessionID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrSessionExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Session has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Session not found",
			})
			return
		}

		c.Set(SessionIDKey, session.ID)
		c.Set(AdminEmailKey, session.Email)
		c.Set(AdminRoleKey, string(session.Role))

		c.Next()
	}
}

// GetSessionID gets the admin session ID from context
func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return sessionID.(uuid.UUID), true
}

// GetAdminEmail gets the admin email from context
func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(AdminEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetAdminRole gets the admin role from context
func GetAdminRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(AdminRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminRole, exists := GetAdminRole(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Admin role not found",
			})
			return
		}

		for _, role := range roles {
			if adminRole == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	}
}

// RequireAdmin creates a middleware that requires the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(string(entities.AdminRoleAdmin))
}
