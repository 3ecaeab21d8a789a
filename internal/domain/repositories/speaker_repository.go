package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
)

// SpeakerRepository defines speaker data operations
type SpeakerRepository interface {
	GetAll(ctx context.Context) ([]*entities.Speaker, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Speaker, error)
	List(ctx context.Context, search string, page, limit int) ([]*entities.Speaker, int64, error)
	Create(ctx context.Context, speaker *entities.Speaker) error
	InsertMany(ctx context.Context, speakers []*entities.Speaker) ([]*entities.Speaker, error)
	Update(ctx context.Context, id uuid.UUID, patch entities.SpeakerPatch) (*entities.Speaker, error)
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
