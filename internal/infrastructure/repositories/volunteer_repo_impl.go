package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/infrastructure/models"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/utils"
)

// volunteerUpsertColumns are the fields refreshed when a signup hits
// an existing email. sort_order is excluded so a repeat signup cannot
// reset an admin-curated position.
var volunteerUpsertColumns = []string{
	"name", "phone", "role", "experience_level", "availability",
	"motivation", "photo_url", "linkedin_url", "twitter_url",
	"github_url",
}

// VolunteerRepository implements volunteer data operations on top of
// the generic record store bound to the volunteers collection.
type VolunteerRepository struct {
	db    *gorm.DB
	store *recordStore[models.Volunteer]
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db, store: newRecordStore[models.Volunteer](db)}
}

func (r *VolunteerRepository) GetAll(ctx context.Context) ([]*entities.Volunteer, error) {
	ms, err := r.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Volunteer, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *VolunteerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Volunteer, error) {
	m, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

// List returns volunteers for admin management with optional search
// over name, email and role. limit=0 returns everything.
func (r *VolunteerRepository) List(ctx context.Context, search string, page, limit int) ([]*entities.Volunteer, int64, error) {
	params := utils.GetPaginationParams(page, limit)

	query := r.db.WithContext(ctx).Model(&models.Volunteer{})
	if strings.TrimSpace(search) != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(role) LIKE ?", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("sort_order ASC")
	if params.Limit > 0 {
		query = query.Offset(params.CalculateOffset()).Limit(params.Limit)
	}

	var ms []models.Volunteer
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Volunteer, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *VolunteerRepository) Create(ctx context.Context, volunteer *entities.Volunteer) error {
	m := r.toModel(volunteer)
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	if err := r.store.Create(ctx, m); err != nil {
		return err
	}
	volunteer.ID = m.ID
	volunteer.CreatedAt = m.CreatedAt
	return nil
}

func (r *VolunteerRepository) InsertMany(ctx context.Context, volunteers []*entities.Volunteer) ([]*entities.Volunteer, error) {
	ms := make([]models.Volunteer, 0, len(volunteers))
	for _, v := range volunteers {
		m := r.toModel(v)
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

	items := make([]*entities.Volunteer, 0, len(inserted))
	for i := range inserted {
		items = append(items, r.toEntity(&inserted[i]))
	}
	return items, nil
}

// Upsert inserts the volunteer or, when the email already exists,
// refreshes the existing row's remaining fields. This is a single
// atomic statement; concurrent signups with the same email cannot
// race a read-then-write here.
func (r *VolunteerRepository) Upsert(ctx context.Context, volunteer *entities.Volunteer) error {
	m := r.toModel(volunteer)
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns(volunteerUpsertColumns),
	}).Create(m).Error
	if err != nil {
		return err
	}

	// Re-read by email so the caller sees the stored row's identity
	// regardless of which branch the statement took.
	var stored models.Volunteer
	if err := r.db.WithContext(ctx).Where("email = ?", m.Email).First(&stored).Error; err != nil {
		return err
	}
	*volunteer = *r.toEntity(&stored)
	return nil
}

func (r *VolunteerRepository) Update(ctx context.Context, id uuid.UUID, patch entities.VolunteerPatch) (*entities.Volunteer, error) {
	updates := patch.Updates()
	if v, ok := updates["availability"]; ok {
		updates["availability"] = marshalStringList(v.([]string))
	}

	m, err := r.store.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

// UpdateProfile applies the restricted profile patch: only name,
// photo and LinkedIn are permitted on this path.
func (r *VolunteerRepository) UpdateProfile(ctx context.Context, id uuid.UUID, patch entities.VolunteerProfilePatch) (*entities.Volunteer, error) {
	m, err := r.store.Update(ctx, id, patch.Updates())
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *VolunteerRepository) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	_, err := r.store.Update(ctx, id, map[string]interface{}{"sort_order": sortOrder})
	return err
}

func (r *VolunteerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}

func (r *VolunteerRepository) toEntity(m *models.Volunteer) *entities.Volunteer {
	return &entities.Volunteer{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           null.StringFromPtr(m.Phone),
		Role:            m.Role,
		ExperienceLevel: null.StringFromPtr(m.ExperienceLevel),
		Availability:    unmarshalStringList(m.Availability),
		Motivation:      m.Motivation,
		PhotoURL:        null.StringFromPtr(m.PhotoURL),
		LinkedInURL:     null.StringFromPtr(m.LinkedInURL),
		TwitterURL:      null.StringFromPtr(m.TwitterURL),
		GithubURL:       null.StringFromPtr(m.GithubURL),
		SortOrder:       m.SortOrder,
		CreatedAt:       m.CreatedAt,
	}
}

func (r *VolunteerRepository) toModel(e *entities.Volunteer) *models.Volunteer {
	return &models.Volunteer{
		ID:              e.ID,
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone.Ptr(),
		Role:            e.Role,
		ExperienceLevel: e.ExperienceLevel.Ptr(),
		Availability:    marshalStringList(e.Availability),
		Motivation:      e.Motivation,
		PhotoURL:        e.PhotoURL.Ptr(),
		LinkedInURL:     e.LinkedInURL.Ptr(),
		TwitterURL:      e.TwitterURL.Ptr(),
		GithubURL:       e.GithubURL.Ptr(),
		SortOrder:       e.SortOrder,
		CreatedAt:       e.CreatedAt,
	}
}

func marshalStringList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func unmarshalStringList(raw string) []string {
	items := []string{}
	if raw == "" {
		return items
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	return items
}
