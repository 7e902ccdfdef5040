package service

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "VCS_Link_Checker/internal/link-service/errors"
	"VCS_Link_Checker/internal/link-service/model"
	"VCS_Link_Checker/internal/link-service/repository"
)

// memoryResultRepository is an in-memory result store over a fixed catalog,
// serialising transactions with a mutex.
type memoryResultRepository struct {
	mu      sync.Mutex
	catalog []string
	rows    map[string]*model.LinkCheckResult
}

func newMemoryResultRepository(catalog ...string) *memoryResultRepository {
	return &memoryResultRepository{
		catalog: catalog,
		rows:    make(map[string]*model.LinkCheckResult),
	}
}

func (m *memoryResultRepository) Upsert(ctx context.Context, resourceID string, alive bool, status *int, reason *string, now time.Time) (model.LinkCheckResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[resourceID]
	if !ok {
		r := model.NewCompletedResult(resourceID, alive, status, reason, now)
		m.rows[resourceID] = &r
		return r, nil
	}
	row.RecordResult(alive, status, reason, now)
	return *row, nil
}

func (m *memoryResultRepository) Get(ctx context.Context, resourceID string) (model.LinkCheckResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[resourceID]
	if !ok {
		return model.LinkCheckResult{}, apperrors.ErrResultNotFound
	}
	return *row, nil
}

func (m *memoryResultRepository) All(ctx context.Context) ([]model.LinkCheckResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	results := make([]model.LinkCheckResult, 0, len(m.rows))
	for _, row := range m.rows {
		results = append(results, *row)
	}
	return results, nil
}

func (m *memoryResultRepository) MarkPending(ctx context.Context, resourceIDs []string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.markPending(resourceIDs, now)
}

func (m *memoryResultRepository) ListUncheckedResourceIDs(ctx context.Context, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listUnchecked(limit), nil
}

func (m *memoryResultRepository) ListStaleResourceIDs(ctx context.Context, checkedBefore time.Time, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listStale(checkedBefore, limit), nil
}

func (m *memoryResultRepository) ListExpiredPendingResourceIDs(ctx context.Context, pendingBefore time.Time, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listExpiredPending(pendingBefore, limit), nil
}

func (m *memoryResultRepository) Transaction(ctx context.Context, fn func(repo repository.ResultRepository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(memoryTx{m})
}

func (m *memoryResultRepository) markPending(resourceIDs []string, now time.Time) error {
	for _, id := range resourceIDs {
		if row, ok := m.rows[id]; ok {
			row.MarkPending(now)
			continue
		}
		r := model.NewPendingResult(id, now)
		m.rows[id] = &r
	}
	return nil
}

func (m *memoryResultRepository) listUnchecked(limit int) []string {
	var ids []string
	for _, id := range m.catalog {
		if len(ids) >= limit {
			break
		}
		if _, ok := m.rows[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (m *memoryResultRepository) listStale(checkedBefore time.Time, limit int) []string {
	var rows []*model.LinkCheckResult
	for _, row := range m.rows {
		if row.Pending() {
			continue
		}
		if row.LastChecked == nil || row.LastChecked.Before(checkedBefore) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].LastChecked, rows[j].LastChecked
		if a == nil || b == nil {
			if a == nil && b == nil {
				return rows[i].ResourceID < rows[j].ResourceID
			}
			return a == nil
		}
		if a.Equal(*b) {
			return rows[i].ResourceID < rows[j].ResourceID
		}
		return a.Before(*b)
	})
	return firstIDs(rows, limit)
}

func (m *memoryResultRepository) listExpiredPending(pendingBefore time.Time, limit int) []string {
	var rows []*model.LinkCheckResult
	for _, row := range m.rows {
		if row.Pending() && row.PendingSince.Before(pendingBefore) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PendingSince.Equal(*rows[j].PendingSince) {
			return rows[i].ResourceID < rows[j].ResourceID
		}
		return rows[i].PendingSince.Before(*rows[j].PendingSince)
	})
	return firstIDs(rows, limit)
}

func firstIDs(rows []*model.LinkCheckResult, limit int) []string {
	var ids []string
	for _, row := range rows {
		if len(ids) >= limit {
			break
		}
		ids = append(ids, row.ResourceID)
	}
	return ids
}

// memoryTx is the repository view handed to a transaction; the lock is already held.
type memoryTx struct {
	*memoryResultRepository
}

func (t memoryTx) MarkPending(ctx context.Context, resourceIDs []string, now time.Time) error {
	return t.markPending(resourceIDs, now)
}

func (t memoryTx) ListUncheckedResourceIDs(ctx context.Context, limit int) ([]string, error) {
	return t.listUnchecked(limit), nil
}

func (t memoryTx) ListStaleResourceIDs(ctx context.Context, checkedBefore time.Time, limit int) ([]string, error) {
	return t.listStale(checkedBefore, limit), nil
}

func (t memoryTx) ListExpiredPendingResourceIDs(ctx context.Context, pendingBefore time.Time, limit int) ([]string, error) {
	return t.listExpiredPending(pendingBefore, limit), nil
}
