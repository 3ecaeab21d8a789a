package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
)

// SponsorRepository defines sponsor data operations
type SponsorRepository interface {
	GetAll(ctx context.Context) ([]*entities.Sponsor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Sponsor, error)
	Create(ctx context.Context, sponsor *entities.Sponsor) error
	Update(ctx context.Context, id uuid.UUID, patch entities.SponsorPatch) (*entities.Sponsor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
