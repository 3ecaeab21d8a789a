package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/infrastructure/models"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/utils"
)

// AdminUserRepository implements admin user data operations
type AdminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// GetByEmail gets an admin user by email
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	var m models.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Create creates a new admin user
func (r *AdminUserRepository) Create(ctx context.Context, user *entities.AdminUser) error {
	m := &models.AdminUser{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
		m.UpdatedAt = m.CreatedAt
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *AdminUserRepository) toEntity(m *models.AdminUser) *entities.AdminUser {
	return &entities.AdminUser{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         entities.AdminRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
