package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"VCS_Link_Checker/internal/link-service/model"
	"VCS_Link_Checker/internal/link-service/repository"
	"VCS_Link_Checker/pkg/infra"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"go.uber.org/zap"
)

// ckan soft-deletes resources by flipping their state
const resourceStateDeleted = "deleted"

// CatalogConsumer applies debezium change events for the catalog's resource
// table to the local resource mirror.
type CatalogConsumer interface {
	Start()
	Stop()
}

type catalogConsumer struct {
	repo   repository.ResourceRepository
	kafka  infra.KafkaReader
	retry  retrypolicy.RetryPolicy[any]
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type resourceRow struct {
	ID        string `json:"id"`
	PackageID string `json:"package_id"`
	URL       string `json:"url"`
	State     string `json:"state"`
	// microseconds since epoch, debezium's MicroTimestamp
	Created      *int64 `json:"created"`
	LastModified *int64 `json:"last_modified"`
}

type resourceEvent struct {
	Payload struct {
		Op     string       `json:"op"`
		Before *resourceRow `json:"before"`
		After  *resourceRow `json:"after"`
	} `json:"payload"`
}

func (r resourceRow) toModel() model.Resource {
	res := model.Resource{
		ID:        r.ID,
		DatasetID: r.PackageID,
		URL:       r.URL,
	}
	if r.Created != nil {
		res.CreatedAt = time.UnixMicro(*r.Created).UTC()
	}
	if r.LastModified != nil {
		t := time.UnixMicro(*r.LastModified).UTC()
		res.LastModified = &t
	}
	return res
}

func (c *catalogConsumer) Start() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			m, err := c.kafka.FetchMessage(c.ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || c.ctx.Err() != nil {
					return
				}
				err = fmt.Errorf("CatalogConsumer.Start: %w", err)
				c.logger.Error("failed to fetch message", zap.Error(err))
				continue
			}
			// an uncommitted message is not fetched again, so keep applying this
			// one until the mirror accepts it
			attempt := 0
			err = failsafe.With[any](c.retry).WithContext(c.ctx).Run(func() error {
				attempt++
				ctx, cancel := context.WithTimeout(c.ctx, 10*time.Second)
				defer cancel()
				e := c.handle(ctx, m.Value)
				if e != nil {
					e = fmt.Errorf("CatalogConsumer.Start: %w", e)
					c.logger.Error("failed to apply resource event", zap.Error(e), zap.Int64("offset", m.Offset), zap.Int("attempt", attempt))
				}
				return e
			})
			if err != nil {
				c.logger.Warn("stopped before resource event was applied", zap.Int64("offset", m.Offset), zap.Error(err))
				return
			}
			ctx, cancel := context.WithTimeout(c.ctx, 5*time.Second)
			err = c.kafka.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("CatalogConsumer.Start: %w", err)
				c.logger.Error("failed to commit messages", zap.Error(err))
			}
		}
	}()
}

// handle returns an error only when the event should be retried.
// Tombstones and malformed events are dropped.
func (c *catalogConsumer) handle(ctx context.Context, value []byte) error {
	if value == nil {
		return nil
	}
	var event resourceEvent
	if err := json.Unmarshal(value, &event); err != nil {
		c.logger.Error("failed to unmarshal message", zap.Error(fmt.Errorf("catalogConsumer.handle: %w", err)))
		return nil
	}

	switch event.Payload.Op {
	case "c", "u", "r":
		after := event.Payload.After
		if after == nil || after.ID == "" {
			c.logger.Warn("resource event without row", zap.String("op", event.Payload.Op))
			return nil
		}
		if after.State == resourceStateDeleted {
			if err := c.repo.DeleteResourceByID(ctx, after.ID); err != nil {
				return fmt.Errorf("catalogConsumer.handle: %w", err)
			}
			return nil
		}
		if err := c.repo.UpsertResource(ctx, after.toModel()); err != nil {
			return fmt.Errorf("catalogConsumer.handle: %w", err)
		}
	case "d":
		before := event.Payload.Before
		if before == nil || before.ID == "" {
			c.logger.Warn("delete event without row")
			return nil
		}
		if err := c.repo.DeleteResourceByID(ctx, before.ID); err != nil {
			return fmt.Errorf("catalogConsumer.handle: %w", err)
		}
	default:
		c.logger.Info("unknown event", zap.String("event", event.Payload.Op))
	}
	return nil
}

func (c *catalogConsumer) Stop() {
	c.cancel()
	c.wg.Wait()
	c.kafka.Close()
}

func NewCatalogConsumer(repo repository.ResourceRepository, logger *zap.Logger, kafka infra.KafkaReader) CatalogConsumer {
	ctx, cancel := context.WithCancel(context.Background())
	return &catalogConsumer{
		repo:   repo,
		kafka:  kafka,
		retry:  infra.NewRetryPolicy(200*time.Millisecond, 30*time.Second),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}
