package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/infrastructure/models"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/utils"
)

// SpeakerRepository implements speaker data operations on top of the
// generic record store bound to the speakers collection.
type SpeakerRepository struct {
	db    *gorm.DB
	store *recordStore[models.Speaker]
}

// NewSpeakerRepository creates a new speaker repository
func NewSpeakerRepository(db *gorm.DB) *SpeakerRepository {
	return &SpeakerRepository{db: db, store: newRecordStore[models.Speaker](db)}
}

func (r *SpeakerRepository) GetAll(ctx context.Context) ([]*entities.Speaker, error) {
	ms, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Speaker, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *SpeakerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Speaker, error) {
	m, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

// List returns speakers for admin management with optional search and
// pagination. limit=0 returns everything.
func (r *SpeakerRepository) List(ctx context.Context, search string, page, limit int) ([]*entities.Speaker, int64, error) {
	params := utils.GetPaginationParams(page, limit)

	query := r.db.WithContext(ctx).Model(&models.Speaker{})
	if strings.TrimSpace(search) != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(talk_title) LIKE ? OR LOWER(organization) LIKE ?", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("sort_order ASC")
	if params.Limit > 0 {
		query = query.Offset(params.CalculateOffset()).Limit(params.Limit)
	}

	var ms []models.Speaker
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Speaker, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *SpeakerRepository) Create(ctx context.Context, speaker *entities.Speaker) error {
	m := r.toModel(speaker)
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	if err := r.store.Create(ctx, m); err != nil {
		return err
	}
	speaker.ID = m.ID
	speaker.CreatedAt = m.CreatedAt
	return nil
}

func (r *SpeakerRepository) InsertMany(ctx context.Context, speakers []*entities.Speaker) ([]*entities.Speaker, error) {
	ms := make([]models.Speaker, 0, len(speakers))
	for _, s := range speakers {
		m := r.toModel(s)
		if m.ID == uuid.Nil {
			m.ID = utils.GenerateUUIDv7()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now()
		}
		ms = append(ms, *m)
	}

	inserted, err := r.store.InsertMany(ctx, ms)
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Speaker, 0, len(inserted))
	for i := range inserted {
		items = append(items, r.toEntity(&inserted[i]))
	}
	return items, nil
}

func (r *SpeakerRepository) Update(ctx context.Context, id uuid.UUID, patch entities.SpeakerPatch) (*entities.Speaker, error) {
	m, err := r.store.Update(ctx, id, patch.Updates())
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *SpeakerRepository) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	_, err := r.store.Update(ctx, id, map[string]interface{}{"sort_order": sortOrder})
	return err
}

func (r *SpeakerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}

func (r *SpeakerRepository) toEntity(m *models.Speaker) *entities.Speaker {
	return &entities.Speaker{
		ID:                m.ID,
		Name:              m.Name,
		Title:             m.Title,
		Organization:      m.Organization,
		TalkTitle:         m.TalkTitle,
		Abstract:          m.Abstract,
		Track:             m.Track,
		Bio:               m.Bio,
		PhotoURL:          m.PhotoURL,
		LinkedInURL:       null.StringFromPtr(m.LinkedInURL),
		TwitterURL:        null.StringFromPtr(m.TwitterURL),
		GithubURL:         null.StringFromPtr(m.GithubURL),
		TalkLengthMinutes: m.TalkLengthMinutes,
		SortOrder:         m.SortOrder,
		CreatedAt:         m.CreatedAt,
	}
}

func (r *SpeakerRepository) toModel(e *entities.Speaker) *models.Speaker {
	return &models.Speaker{
		ID:                e.ID,
		Name:              e.Name,
		Title:             e.Title,
		Organization:      e.Organization,
		TalkTitle:         e.TalkTitle,
		Abstract:          e.Abstract,
		Track:             e.Track,
		Bio:               e.Bio,
		PhotoURL:          e.PhotoURL,
		LinkedInURL:       e.LinkedInURL.Ptr(),
		TwitterURL:        e.TwitterURL.Ptr(),
		GithubURL:         e.GithubURL.Ptr(),
		TalkLengthMinutes: e.TalkLengthMinutes,
		SortOrder:         e.SortOrder,
		CreatedAt:         e.CreatedAt,
	}
}
