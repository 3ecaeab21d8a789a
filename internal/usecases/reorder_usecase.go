package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/logger"
)

// ReorderPageSize is how many rows the admin table shows per page.
// Reordering operates on the displayed page only.
const ReorderPageSize = 10

// ReorderItem is one row of a sortable admin listing. Email and Role
// are empty for record types that do not carry them.
type ReorderItem struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

type sortOrderUpdater interface {
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
}

// ReorderUsecase implements drag and drop reordering of admin table
// rows. A drop rewrites the sort order of every row on the currently
// displayed page, in parallel, and reports per-row outcomes. Rows on
// other pages keep their stored order.
type ReorderUsecase struct {
	updater sortOrderUpdater
}

// NewReorderUsecase creates a new reorder usecase
func NewReorderUsecase(updater sortOrderUpdater) *ReorderUsecase {
	return &ReorderUsecase{updater: updater}
}

// FilterItems returns the items whose name, email, or role contains
// the search term, case-insensitively. An empty term matches all.
func FilterItems(items []ReorderItem, search string) []ReorderItem {
	if search == "" {
		return items
	}

	term := strings.ToLower(search)
	filtered := make([]ReorderItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Email), term) ||
			strings.Contains(strings.ToLower(item.Role), term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Page slices one display page out of the filtered items. Pages are
// 1-based. A page past the end is empty.
func Page(items []ReorderItem, page int) []ReorderItem {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * ReorderPageSize
	if start >= len(items) {
		return []ReorderItem{}
	}
	end := start + ReorderPageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Reorder moves the row at fromIndex to toIndex within the displayed
// page and persists the page's new order. Indexes are positions within
// the page, not within the full list. The returned BatchResult
// partitions the per-row updates. Failed rows are not retried and
// successful rows are not rolled back.
func (u *ReorderUsecase) Reorder(ctx context.Context, items []ReorderItem, search string, page, fromIndex, toIndex int) (*BatchResult, error) {
	filtered := FilterItems(items, search)
	pageItems := Page(filtered, page)

	if fromIndex < 0 || fromIndex >= len(pageItems) ||
		toIndex < 0 || toIndex >= len(pageItems) {
		return nil, domainerrors.ErrInvalidInput
	}

	moved := arrayMove(pageItems, fromIndex, toIndex)

	if page < 1 {
		page = 1
	}
	pageStart := (page - 1) * ReorderPageSize

	ids := make([]uuid.UUID, len(moved))
	orders := make(map[uuid.UUID]int, len(moved))
	for i, item := range moved {
		ids[i] = item.ID
		orders[item.ID] = pageStart + i + 1
	}

	result := runParallel(ids, func(id uuid.UUID) error {
		return u.updater.UpdateSortOrder(ctx, id, orders[id])
	})

	if !result.AllSucceeded() {
		logger.Warn(ctx, "reorder partially failed",
			zap.Int("succeeded", len(result.Succeeded)),
			zap.Int("failed", len(result.Failed)))
	}
	return result, nil
}

// arrayMove returns a copy of items with the element at from relocated
// to position to.
func arrayMove(items []ReorderItem, from, to int) []ReorderItem {
	moved := make([]ReorderItem, 0, len(items))
	moved = append(moved, items...)
	item := moved[from]
	moved = append(moved[:from], moved[from+1:]...)
	moved = append(moved[:to], append([]ReorderItem{item}, moved[to:]...)...)
	return moved
}
