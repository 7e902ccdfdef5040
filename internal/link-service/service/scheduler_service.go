package service

import (
	"context"
	"fmt"
	"time"

	"VCS_Link_Checker/internal/link-service/config"
	"VCS_Link_Checker/internal/link-service/metrics"
	"VCS_Link_Checker/internal/link-service/repository"
)

//go:generate mockgen -source=scheduler_service.go -destination=../mocks/service/scheduler_service.go

type SchedulerService interface {
	// GetResourcesToCheck hands out up to n resource ids and marks them pending.
	// Zero durations fall back to the configured recheck and resend intervals.
	GetResourcesToCheck(ctx context.Context, n int, since time.Duration, pendingSince time.Duration) ([]string, error)
}

type schedulerService struct {
	resultRepository repository.ResultRepository
	cfg              config.LinkCheckerConfig
	metrics          *metrics.Metrics
	now              func() time.Time
}

// selection collects ids across tiers, keeping the first occurrence of each.
type selection struct {
	limit int
	ids   []string
	seen  map[string]struct{}
}

func newSelection(limit int) *selection {
	return &selection{
		limit: limit,
		ids:   make([]string, 0, limit),
		seen:  make(map[string]struct{}, limit),
	}
}

func (s *selection) add(ids []string) int {
	added := 0
	for _, id := range ids {
		if s.full() {
			break
		}
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.ids = append(s.ids, id)
		added++
	}
	return added
}

func (s *selection) full() bool {
	return len(s.ids) >= s.limit
}

func (s *selection) remaining() int {
	return s.limit - len(s.ids)
}

func (s *schedulerService) GetResourcesToCheck(ctx context.Context, n int, since time.Duration, pendingSince time.Duration) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	if s.cfg.MaxResourcesToCheck > 0 && n > s.cfg.MaxResourcesToCheck {
		n = s.cfg.MaxResourcesToCheck
	}
	if since <= 0 {
		since = s.cfg.RecheckResourcesAfter
	}
	if pendingSince <= 0 {
		pendingSince = s.cfg.ResendPendingResourcesAfter
	}
	now := s.now()

	var sel *selection
	tierCounts := make(map[string]int, 3)
	err := s.resultRepository.Transaction(ctx, func(repo repository.ResultRepository) error {
		sel = newSelection(n)

		ids, err := repo.ListUncheckedResourceIDs(ctx, sel.remaining())
		if err != nil {
			return err
		}
		tierCounts[metrics.TierUnchecked] = sel.add(ids)

		if !sel.full() {
			ids, err = repo.ListStaleResourceIDs(ctx, now.Add(-since), sel.remaining())
			if err != nil {
				return err
			}
			tierCounts[metrics.TierStale] = sel.add(ids)
		}

		if !sel.full() {
			ids, err = repo.ListExpiredPendingResourceIDs(ctx, now.Add(-pendingSince), sel.remaining())
			if err != nil {
				return err
			}
			tierCounts[metrics.TierExpiredPending] = sel.add(ids)
		}

		if len(sel.ids) == 0 {
			return nil
		}
		return repo.MarkPending(ctx, sel.ids, now)
	})
	if err != nil {
		return nil, fmt.Errorf("SchedulerService.GetResourcesToCheck: %w", err)
	}

	for tier, count := range tierCounts {
		s.metrics.ResourcesSelected.WithLabelValues(tier).Add(float64(count))
	}
	return sel.ids, nil
}

func NewSchedulerService(resultRepository repository.ResultRepository, cfg config.LinkCheckerConfig, m *metrics.Metrics) SchedulerService {
	return &schedulerService{
		resultRepository: resultRepository,
		cfg:              cfg,
		metrics:          m,
		now:              func() time.Time { return time.Now().UTC() },
	}
}
