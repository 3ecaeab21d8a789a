package repositories

import (
	"context"

	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
)

// AdminUserRepository defines admin user data operations
type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error)
	Create(ctx context.Context, user *entities.AdminUser) error
}
