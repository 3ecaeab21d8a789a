package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/repositories"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/crypto"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/jwt"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/logger"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/redis"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/utils"
)

// SessionStore is the server-side session persistence the auth flow
// depends on.
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles admin authentication and session lifecycle.
// Sessions expire a fixed window after login. Expiry is evaluated
// lazily on access, and an expired session is removed as a side
// effect of the check that discovered it.
type AuthUsecase struct {
	adminRepo     repositories.AdminUserRepository
	sessions      SessionStore
	jwtService    *jwt.JWTService
	sessionExpiry time.Duration
	now           func() time.Time
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	adminRepo repositories.AdminUserRepository,
	sessions SessionStore,
	jwtService *jwt.JWTService,
	sessionExpiry time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		adminRepo:     adminRepo,
		sessions:      sessions,
		jwtService:    jwtService,
		sessionExpiry: sessionExpiry,
		now:           time.Now,
	}
}

// SetClock overrides the time source. Tests use this to move sessions
// across their expiry boundary.
func (u *AuthUsecase) SetClock(now func() time.Time) {
	u.now = now
}

// Login verifies credentials against the stored bcrypt hash and, on
// success, creates a server-side session and a bearer token tied to it.
// Unknown email and wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.LoginResponse, error) {
	user, err := u.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	session := &entities.AdminSession{
		ID:        utils.GenerateUUIDv7(),
		Email:     user.Email,
		Role:      user.Role,
		LoginTime: u.now(),
	}

	data := &redis.SessionData{
		ID:        session.ID.String(),
		Email:     session.Email,
		Role:      string(session.Role),
		LoginTime: session.LoginTime,
	}
	if err := u.sessions.CreateSession(ctx, session.ID.String(), data, u.sessionExpiry); err != nil {
		logger.Error(ctx, "failed to store session", zap.Error(err))
		return nil, domainerrors.ErrLoginFailed
	}

	token, err := u.jwtService.GenerateSessionToken(session.ID, session.Email, string(session.Role))
	if err != nil {
		logger.Error(ctx, "failed to sign session token", zap.Error(err))
		return nil, domainerrors.ErrLoginFailed
	}

	logger.Info(ctx, "admin logged in", zap.String("email", user.Email))

	return &entities.LoginResponse{Token: token, Session: session}, nil
}

// Logout removes the session. Logging out an unknown or already
// removed session is not an error.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return u.sessions.DeleteSession(ctx, sessionID.String())
}

// GetSession loads a session and enforces the expiry window. An
// expired session is deleted before the error is returned.
func (u *AuthUsecase) GetSession(ctx context.Context, sessionID uuid.UUID) (*entities.AdminSession, error) {
	data, err := u.sessions.GetSession(ctx, sessionID.String())
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	if u.now().Sub(data.LoginTime) > u.sessionExpiry {
		if err := u.sessions.DeleteSession(ctx, sessionID.String()); err != nil {
			logger.Warn(ctx, "failed to delete expired session", zap.Error(err))
		}
		return nil, domainerrors.ErrSessionExpired
	}

	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return &entities.AdminSession{
		ID:        id,
		Email:     data.Email,
		Role:      entities.AdminRole(data.Role),
		LoginTime: data.LoginTime,
	}, nil
}

// IsSessionValid reports whether the session exists and is inside its
// expiry window.
func (u *AuthUsecase) IsSessionValid(ctx context.Context, sessionID uuid.UUID) bool {
	_, err := u.GetSession(ctx, sessionID)
	return err == nil
}

// IsAdmin reports whether the session belongs to a full admin, as
// opposed to an editor.
func (u *AuthUsecase) IsAdmin(ctx context.Context, sessionID uuid.UUID) bool {
	session, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return false
	}
	return session.Role == entities.AdminRoleAdmin
}
