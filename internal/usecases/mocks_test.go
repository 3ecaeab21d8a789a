package usecases

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
)

type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) Create(ctx context.Context, user *entities.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// fakeSortOrderUpdater records updates and can be told to fail for
// specific ids.
type fakeSortOrderUpdater struct {
	mu      sync.Mutex
	orders  map[uuid.UUID]int
	failIDs map[uuid.UUID]error
}

func newFakeSortOrderUpdater() *fakeSortOrderUpdater {
	return &fakeSortOrderUpdater{
		orders:  map[uuid.UUID]int{},
		failIDs: map[uuid.UUID]error{},
	}
}

func (f *fakeSortOrderUpdater) UpdateSortOrder(_ context.Context, id uuid.UUID, sortOrder int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failIDs[id]; ok {
		return err
	}
	f.orders[id] = sortOrder
	return nil
}

// fakeDeleter records deletions and can be told to fail for specific
// ids.
type fakeDeleter struct {
	mu      sync.Mutex
	deleted []uuid.UUID
	failIDs map[uuid.UUID]error
}

func newFakeDeleter() *fakeDeleter {
	return &fakeDeleter{failIDs: map[uuid.UUID]error{}}
}

func (f *fakeDeleter) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failIDs[id]; ok {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}
