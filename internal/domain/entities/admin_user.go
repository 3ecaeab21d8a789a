package entities

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole represents admin user roles
type AdminRole string

const (
	AdminRoleAdmin  AdminRole = "admin"
	AdminRoleEditor AdminRole = "editor"
)

// AdminUser represents a dashboard user. Passwords are stored as
// bcrypt hashes only.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         AdminRole `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AdminSession is the server-side proof of admin authentication.
// It is valid for a fixed window from LoginTime.
type AdminSession struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      AdminRole `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

// LoginInput represents input for admin login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token   string        `json:"token"`
	Session *AdminSession `json:"session"`
}
