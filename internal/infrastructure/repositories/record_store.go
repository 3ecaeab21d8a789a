package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
)

// recordStore provides uniform CRUD over one collection, parameterized
// by the collection's model type. Every collection carries an id, a
// creation timestamp and a sort_order column; GetAll always returns
// rows in ascending sort_order. Deletes are permanent.
type recordStore[M any] struct {
	db *gorm.DB
}

func newRecordStore[M any](db *gorm.DB) *recordStore[M] {
	return &recordStore[M]{db: db}
}

// GetAll returns every row ordered by sort_order. The result is never
// nil, an empty collection yields an empty slice.
func (s *recordStore[M]) GetAll(ctx context.Context) ([]M, error) {
	ms := make([]M, 0)
	if err := s.db.WithContext(ctx).Order("sort_order ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (s *recordStore[M]) GetByID(ctx context.Context, id uuid.UUID) (*M, error) {
	var m M
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *recordStore[M]) Create(ctx context.Context, m *M) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// InsertMany bulk-inserts rows. An empty input is an explicit no-op
// rather than a round trip the backend would reject.
func (s *recordStore[M]) InsertMany(ctx context.Context, ms []M) ([]M, error) {
	if len(ms) == 0 {
		return []M{}, nil
	}
	if err := s.db.WithContext(ctx).Create(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

// Update applies a partial patch and returns the patched row. A patch
// that matches zero rows is reported as ErrNotFound; the driver does
// not surface that case as an error on its own.
func (s *recordStore[M]) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*M, error) {
	if len(updates) == 0 {
		return s.GetByID(ctx, id)
	}

	result := s.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a row permanently. A missing id is not an error.
func (s *recordStore[M]) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(new(M), "id = ?", id).Error
}
