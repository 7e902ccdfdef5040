package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"VCS_Link_Checker/internal/link-service/metrics"
	"VCS_Link_Checker/internal/link-service/repository"
	"VCS_Link_Checker/internal/link-service/service"
	"VCS_Link_Checker/pkg/infra"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	taskStatusPublished = "published"
	taskStatusFailed    = "failed"
	taskStatusSkipped   = "skipped"
)

// TaskDispatcher pushes scheduler batches onto kafka so that any number of
// fetchers can share the work.
type TaskDispatcher interface {
	Start() error
	Stop()
	// Dispatch hands out one batch and returns how many tasks were published.
	Dispatch(ctx context.Context) (int, error)
}

type linkCheckTask struct {
	ResourceID   string    `json:"resource_id"`
	URL          string    `json:"url"`
	BatchID      string    `json:"batch_id"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

type taskDispatcher struct {
	scheduler    service.SchedulerService
	resourceRepo repository.ResourceRepository
	kafka        infra.KafkaWriter
	metrics      *metrics.Metrics
	logger       *zap.Logger
	cron         *cron.Cron
	cfg          DispatchConfig
	newBatchID   func() string
	now          func() time.Time
}

func (d *taskDispatcher) Start() error {
	_, err := d.cron.AddFunc(d.cfg.Schedule, d.onTick)
	if err != nil {
		return fmt.Errorf("TaskDispatcher.Start: %w", err)
	}
	d.cron.Start()
	return nil
}

func (d *taskDispatcher) Stop() {
	<-d.cron.Stop().Done()
	d.kafka.Close()
}

func (d *taskDispatcher) onTick() {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
	defer cancel()
	n, err := d.Dispatch(ctx)
	if err != nil {
		d.logger.Error("failed to dispatch link check tasks", zap.Error(err))
		return
	}
	if n > 0 {
		d.logger.Info("dispatched link check tasks", zap.Int("count", n))
	}
}

func (d *taskDispatcher) Dispatch(ctx context.Context) (int, error) {
	ids, err := d.scheduler.GetResourcesToCheck(ctx, d.cfg.BatchSize, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("TaskDispatcher.Dispatch: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	// ids are pending from here on; anything not published is re-offered
	// once the resend interval has passed
	resources, err := d.resourceRepo.GetResourcesByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("TaskDispatcher.Dispatch: %w", err)
	}
	urls := make(map[string]string, len(resources))
	for _, r := range resources {
		urls[r.ID] = strings.TrimSpace(r.URL)
	}

	batchID := d.newBatchID()
	dispatchedAt := d.now()
	messages := make([]kafka.Message, 0, len(ids))
	for _, id := range ids {
		u := urls[id]
		if u == "" {
			d.logger.Warn("resource has no url, skipping", zap.String("resource_id", id), zap.String("batch_id", batchID))
			d.metrics.TasksPublished.WithLabelValues(taskStatusSkipped).Inc()
			continue
		}
		b, e := json.Marshal(linkCheckTask{
			ResourceID:   id,
			URL:          u,
			BatchID:      batchID,
			DispatchedAt: dispatchedAt,
		})
		if e != nil {
			e = fmt.Errorf("TaskDispatcher.Dispatch: %w", e)
			d.logger.Error("failed to marshal link check task", zap.Error(e), zap.String("resource_id", id))
			continue
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(id),
			Value: b,
		})
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err = d.kafka.WriteMessages(ctx, messages...); err != nil {
		d.metrics.TasksPublished.WithLabelValues(taskStatusFailed).Add(float64(len(messages)))
		return 0, fmt.Errorf("TaskDispatcher.Dispatch: %w", err)
	}
	d.metrics.TasksPublished.WithLabelValues(taskStatusPublished).Add(float64(len(messages)))
	return len(messages), nil
}

func NewTaskDispatcher(logger *zap.Logger, scheduler service.SchedulerService, resourceRepo repository.ResourceRepository, kafka infra.KafkaWriter, m *metrics.Metrics, cfg DispatchConfig) TaskDispatcher {
	return &taskDispatcher{
		scheduler:    scheduler,
		resourceRepo: resourceRepo,
		kafka:        kafka,
		metrics:      m,
		logger:       logger,
		cron:         cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(zap.NewStdLog(logger))))),
		cfg:          cfg,
		newBatchID:   func() string { return uuid.NewString() },
		now:          func() time.Time { return time.Now().UTC() },
	}
}
