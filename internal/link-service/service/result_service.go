package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "VCS_Link_Checker/internal/link-service/errors"
	"VCS_Link_Checker/internal/link-service/metrics"
	"VCS_Link_Checker/internal/link-service/model"
	"VCS_Link_Checker/internal/link-service/repository"
	"VCS_Link_Checker/internal/link-service/verdict"
)

//go:generate mockgen -source=result_service.go -destination=../mocks/service/result_service.go

// ResourceResult is a stored link check result together with its verdict.
type ResourceResult struct {
	Result  model.LinkCheckResult
	Verdict verdict.Verdict
}

type ResultService interface {
	// Upsert records one completed check. alive must be set, status and reason
	// are optional.
	Upsert(ctx context.Context, resourceID string, alive *bool, status *int, reason *string) (model.LinkCheckResult, error)
	// Get returns apperrors.ErrResultNotFound when the resource was never
	// handed out or reported.
	Get(ctx context.Context, resourceID string) (ResourceResult, error)
}

type resultService struct {
	resultRepository repository.ResultRepository
	policy           verdict.Policy
	metrics          *metrics.Metrics
	now              func() time.Time
}

func (s *resultService) Upsert(ctx context.Context, resourceID string, alive *bool, status *int, reason *string) (model.LinkCheckResult, error) {
	if strings.TrimSpace(resourceID) == "" {
		return model.LinkCheckResult{}, apperrors.NewValidationError("resource_id", "must not be empty")
	}
	if alive == nil {
		return model.LinkCheckResult{}, apperrors.NewValidationError("alive", "must be true or false")
	}
	if status != nil && *status < 0 {
		return model.LinkCheckResult{}, apperrors.NewValidationError("status", "must not be negative")
	}

	result, err := s.resultRepository.Upsert(ctx, resourceID, *alive, status, reason, s.now())
	if err != nil {
		return model.LinkCheckResult{}, fmt.Errorf("ResultService.Upsert: %w", err)
	}
	s.metrics.ResultsRecorded.WithLabelValues(strconv.FormatBool(*alive)).Inc()
	return result, nil
}

func (s *resultService) Get(ctx context.Context, resourceID string) (ResourceResult, error) {
	if strings.TrimSpace(resourceID) == "" {
		return ResourceResult{}, apperrors.NewValidationError("resource_id", "must not be empty")
	}
	result, err := s.resultRepository.Get(ctx, resourceID)
	if err != nil {
		return ResourceResult{}, fmt.Errorf("ResultService.Get: %w", err)
	}
	return ResourceResult{
		Result:  result,
		Verdict: s.policy.Classify(&result, s.now()),
	}, nil
}

func NewResultService(resultRepository repository.ResultRepository, policy verdict.Policy, m *metrics.Metrics) ResultService {
	return &resultService{
		resultRepository: resultRepository,
		policy:           policy,
		metrics:          m,
		now:              func() time.Time { return time.Now().UTC() },
	}
}
