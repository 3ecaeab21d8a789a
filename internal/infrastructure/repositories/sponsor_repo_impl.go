package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/infrastructure/models"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/utils"
)

// SponsorRepository implements sponsor data operations on top of the
// generic record store bound to the sponsors collection.
type SponsorRepository struct {
	store *recordStore[models.Sponsor]
}

// NewSponsorRepository creates a new sponsor repository
func NewSponsorRepository(db *gorm.DB) *SponsorRepository {
	return &SponsorRepository{store: newRecordStore[models.Sponsor](db)}
}

func (r *SponsorRepository) GetAll(ctx context.Context) ([]*entities.Sponsor, error) {
	ms, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Sponsor, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *SponsorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sponsor, error) {
	m, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *SponsorRepository) Create(ctx context.Context, sponsor *entities.Sponsor) error {
	m := r.toModel(sponsor)
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	if err := r.store.Create(ctx, m); err != nil {
		return err
	}
	sponsor.ID = m.ID
	sponsor.CreatedAt = m.CreatedAt
	return nil
}

func (r *SponsorRepository) Update(ctx context.Context, id uuid.UUID, patch entities.SponsorPatch) (*entities.Sponsor, error) {
	updates := patch.Updates()
	if v, ok := updates["benefits"]; ok {
		updates["benefits"] = marshalStringList(v.([]string))
	}

	m, err := r.store.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *SponsorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}

func (r *SponsorRepository) toEntity(m *models.Sponsor) *entities.Sponsor {
	return &entities.Sponsor{
		ID:           m.ID,
		CompanyName:  m.CompanyName,
		Tier:         entities.SponsorTier(m.Tier),
		LogoURL:      m.LogoURL,
		WebsiteURL:   null.StringFromPtr(m.WebsiteURL),
		Description:  m.Description,
		ContactEmail: null.StringFromPtr(m.ContactEmail),
		Benefits:     unmarshalStringList(m.Benefits),
		SortOrder:    m.SortOrder,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *SponsorRepository) toModel(e *entities.Sponsor) *models.Sponsor {
	return &models.Sponsor{
		ID:           e.ID,
		CompanyName:  e.CompanyName,
		Tier:         string(e.Tier),
		LogoURL:      e.LogoURL,
		WebsiteURL:   e.WebsiteURL.Ptr(),
		Description:  e.Description,
		ContactEmail: e.ContactEmail.Ptr(),
		Benefits:     marshalStringList(e.Benefits),
		SortOrder:    e.SortOrder,
		CreatedAt:    e.CreatedAt,
	}
}
