package result_consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "VCS_Link_Checker/internal/link-service/errors"
	"VCS_Link_Checker/internal/link-service/service"
	"VCS_Link_Checker/pkg/infra"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ResultConsumer stores link check results published by the fetchers.
type ResultConsumer interface {
	Start()
	Stop()
}

type resultConsumer struct {
	kafkaReader   infra.KafkaReader
	resultService service.ResultService
	validate      *validator.Validate
	retry         retrypolicy.RetryPolicy[any]
	logger        *zap.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

type linkCheckResultEvent struct {
	ResourceID string  `json:"resource_id" validate:"required"`
	Alive      *bool   `json:"alive" validate:"required"`
	Status     *int    `json:"status" validate:"omitempty,gte=0"`
	Reason     *string `json:"reason"`
}

func (r *resultConsumer) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for {
			m, err := r.kafkaReader.FetchMessage(r.ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || r.ctx.Err() != nil {
					return
				}
				err = fmt.Errorf("resultConsumer.Start: %w", err)
				r.logger.Error("failed to fetch message", zap.Error(err))
				continue
			}
			// the group reader never hands out an uncommitted message again, so
			// a failed store is retried here until it succeeds or we shut down
			attempt := 0
			err = failsafe.With[any](r.retry).WithContext(r.ctx).Run(func() error {
				attempt++
				ctx, cancel := context.WithTimeout(r.ctx, 10*time.Second)
				defer cancel()
				e := r.handle(ctx, m.Value)
				if e != nil {
					e = fmt.Errorf("resultConsumer.Start: %w", e)
					r.logger.Error("failed to store link check result", zap.Error(e), zap.Int64("offset", m.Offset), zap.Int("attempt", attempt))
				}
				return e
			})
			if err != nil {
				r.logger.Warn("stopped before link check result was stored", zap.Int64("offset", m.Offset), zap.Error(err))
				return
			}
			ctx, cancel := context.WithTimeout(r.ctx, 5*time.Second)
			err = r.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("resultConsumer.Start: %w", err)
				r.logger.Error("failed to commit messages", zap.Error(err))
			}
		}
	}()
}

// handle stores one result. Messages that can never be stored are logged and
// reported as handled so they get committed.
func (r *resultConsumer) handle(ctx context.Context, value []byte) error {
	if value == nil {
		return nil
	}
	var event linkCheckResultEvent
	if err := json.Unmarshal(value, &event); err != nil {
		r.logger.Error("failed to unmarshal message", zap.Error(fmt.Errorf("resultConsumer.handle: %w", err)))
		return nil
	}
	if err := r.validate.Struct(event); err != nil {
		r.logger.Warn("dropping invalid link check result", zap.Error(err), zap.String("resource_id", event.ResourceID))
		return nil
	}

	_, err := r.resultService.Upsert(ctx, event.ResourceID, event.Alive, event.Status, event.Reason)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			r.logger.Warn("dropping invalid link check result", zap.Error(err), zap.String("resource_id", event.ResourceID))
			return nil
		}
		return fmt.Errorf("resultConsumer.handle: %w", err)
	}
	return nil
}

// Stop ends the fetch loop, abandoning a result that is still being retried,
// and closes the reader.
func (r *resultConsumer) Stop() {
	r.cancel()
	r.wg.Wait()
	r.kafkaReader.Close()
}

func NewResultConsumer(reader infra.KafkaReader, resultService service.ResultService, logger *zap.Logger) ResultConsumer {
	ctx, cancel := context.WithCancel(context.Background())
	return &resultConsumer{
		kafkaReader:   reader,
		resultService: resultService,
		validate:      validator.New(),
		retry:         infra.NewRetryPolicy(200*time.Millisecond, 30*time.Second),
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
	}
}
