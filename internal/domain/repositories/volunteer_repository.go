package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
)

// VolunteerRepository defines volunteer data operations. Upsert is
// keyed on the email column and must be a single atomic statement.
type VolunteerRepository interface {
	GetAll(ctx context.Context) ([]*entities.Volunteer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Volunteer, error)
	List(ctx context.Context, search string, page, limit int) ([]*entities.Volunteer, int64, error)
	Create(ctx context.Context, volunteer *entities.Volunteer) error
	InsertMany(ctx context.Context, volunteers []*entities.Volunteer) ([]*entities.Volunteer, error)
	Upsert(ctx context.Context, volunteer *entities.Volunteer) error
	Update(ctx context.Context, id uuid.UUID, patch entities.VolunteerPatch) (*entities.Volunteer, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch entities.VolunteerProfilePatch) (*entities.Volunteer, error)
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
