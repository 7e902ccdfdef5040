package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "VCS_Link_Checker/internal/link-service/errors"
	"VCS_Link_Checker/internal/link-service/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=result_repository.go -destination=../mocks/repository/result_repository.go

type ResultRepository interface {
	Upsert(ctx context.Context, resourceID string, alive bool, status *int, reason *string, now time.Time) (model.LinkCheckResult, error)
	Get(ctx context.Context, resourceID string) (model.LinkCheckResult, error)
	All(ctx context.Context) ([]model.LinkCheckResult, error)
	MarkPending(ctx context.Context, resourceIDs []string, now time.Time) error
	ListUncheckedResourceIDs(ctx context.Context, limit int) ([]string, error)
	ListStaleResourceIDs(ctx context.Context, checkedBefore time.Time, limit int) ([]string, error)
	ListExpiredPendingResourceIDs(ctx context.Context, pendingBefore time.Time, limit int) ([]string, error)
	Transaction(ctx context.Context, fn func(repo ResultRepository) error) error
}

type resultRepository struct {
	db *gorm.DB
}

var skipLocked = clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}

func (r *resultRepository) Upsert(ctx context.Context, resourceID string, alive bool, status *int, reason *string, now time.Time) (model.LinkCheckResult, error) {
	result, err := r.upsert(ctx, resourceID, alive, status, reason, now)
	if isUniqueViolation(err) {
		// another caller created the row between our select and insert, it is locked-readable now
		result, err = r.upsert(ctx, resourceID, alive, status, reason, now)
	}
	if err != nil {
		return model.LinkCheckResult{}, fmt.Errorf("ResultRepository.Upsert: %w", err)
	}
	return result, nil
}

func (r *resultRepository) upsert(ctx context.Context, resourceID string, alive bool, status *int, reason *string, now time.Time) (model.LinkCheckResult, error) {
	var result model.LinkCheckResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []model.LinkCheckResult
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("resource_id = ?", resourceID).Find(&rows).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			result = model.NewCompletedResult(resourceID, alive, status, reason, now)
			return tx.Create(&result).Error
		}
		result = rows[0]
		result.RecordResult(alive, status, reason, now)
		return tx.Save(&result).Error
	})
	return result, err
}

func (r *resultRepository) Get(ctx context.Context, resourceID string) (model.LinkCheckResult, error) {
	var rows []model.LinkCheckResult
	err := r.db.WithContext(ctx).Where("resource_id = ?", resourceID).Find(&rows).Error
	if err != nil {
		return model.LinkCheckResult{}, fmt.Errorf("ResultRepository.Get: %w", err)
	}
	if len(rows) == 0 {
		return model.LinkCheckResult{}, fmt.Errorf("ResultRepository.Get: %w", apperrors.ErrResultNotFound)
	}
	return rows[0], nil
}

func (r *resultRepository) All(ctx context.Context) ([]model.LinkCheckResult, error) {
	var results []model.LinkCheckResult
	if err := r.db.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("ResultRepository.All: %w", err)
	}
	return results, nil
}

// MarkPending creates pending rows for new resources and sets pending_since on
// existing ones in a single statement, leaving their check history alone.
func (r *resultRepository) MarkPending(ctx context.Context, resourceIDs []string, now time.Time) error {
	rows := make([]model.LinkCheckResult, 0, len(resourceIDs))
	seen := make(map[string]struct{}, len(resourceIDs))
	for _, id := range resourceIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, model.NewPendingResult(id, now))
	}
	if len(rows) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "resource_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"pending_since"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("ResultRepository.MarkPending: %w", err)
	}
	return nil
}

// ListUncheckedResourceIDs returns catalog resources that have no result row,
// oldest first. The catalog rows are locked so a concurrent scheduler skips them.
func (r *resultRepository) ListUncheckedResourceIDs(ctx context.Context, limit int) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Raw(`SELECT r.id FROM resources AS r
WHERE NOT EXISTS (SELECT 1 FROM link_checker_results AS l WHERE l.resource_id = r.id)
ORDER BY r.created_at ASC, r.id ASC
LIMIT ?
FOR UPDATE OF r SKIP LOCKED`, limit).Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("ResultRepository.ListUncheckedResourceIDs: %w", err)
	}
	return ids, nil
}

func (r *resultRepository) ListStaleResourceIDs(ctx context.Context, checkedBefore time.Time, limit int) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.LinkCheckResult{}).
		Clauses(skipLocked).
		Where("pending_since IS NULL AND (last_checked IS NULL OR last_checked < ?)", checkedBefore).
		Order("last_checked ASC NULLS FIRST, resource_id ASC").
		Limit(limit).
		Pluck("resource_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("ResultRepository.ListStaleResourceIDs: %w", err)
	}
	return ids, nil
}

func (r *resultRepository) ListExpiredPendingResourceIDs(ctx context.Context, pendingBefore time.Time, limit int) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.LinkCheckResult{}).
		Clauses(skipLocked).
		Where("pending_since IS NOT NULL AND pending_since < ?", pendingBefore).
		Order("pending_since ASC, resource_id ASC").
		Limit(limit).
		Pluck("resource_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("ResultRepository.ListExpiredPendingResourceIDs: %w", err)
	}
	return ids, nil
}

func (r *resultRepository) Transaction(ctx context.Context, fn func(repo ResultRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&resultRepository{db: tx})
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{
		db: db,
	}
}
