package usecases

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// BatchFailure records one failed item in a parallel batch.
type BatchFailure struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error"`
}

// BatchResult partitions a parallel batch into the items that
// succeeded and the items that failed. A batch never aborts early and
// never rolls back completed items.
type BatchResult struct {
	Succeeded []uuid.UUID    `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}

// AllSucceeded reports whether no item failed.
func (r *BatchResult) AllSucceeded() bool {
	return len(r.Failed) == 0
}

// runParallel applies fn to every id concurrently and partitions the
// outcomes. Result ordering follows the input ordering.
func runParallel(ids []uuid.UUID, fn func(uuid.UUID) error) *BatchResult {
	errs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			errs[i] = fn(id)
		}(i, id)
	}
	wg.Wait()

	result := &BatchResult{
		Succeeded: make([]uuid.UUID, 0, len(ids)),
		Failed:    make([]BatchFailure, 0),
	}
	for i, id := range ids {
		if errs[i] != nil {
			result.Failed = append(result.Failed, BatchFailure{ID: id, Error: errs[i].Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}
	return result
}

type recordDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteMany deletes the given records in parallel and reports which
// deletions succeeded. An empty id list is a no-op.
func DeleteMany(ctx context.Context, deleter recordDeleter, ids []uuid.UUID) *BatchResult {
	return runParallel(ids, func(id uuid.UUID) error {
		return deleter.Delete(ctx, id)
	})
}
