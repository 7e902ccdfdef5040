package repository

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"VCS_Link_Checker/internal/link-service/model"

	"github.com/redis/go-redis/v9"
)

const organizationsCacheKey = "catalog:organizations"

// cachedDatasetRepository keeps catalog search results in redis for cacheTTL.
// A redis failure falls through to the underlying repository.
type cachedDatasetRepository struct {
	redis    *redis.Client
	repo     DatasetRepository
	cacheTTL time.Duration
}

func (*cachedDatasetRepository) getDatasetsCacheKey(organization string) string {
	if organization == "" {
		return "catalog:datasets"
	}
	return fmt.Sprintf("catalog:datasets:%s", organization)
}

func (c *cachedDatasetRepository) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	var organizations []model.Organization
	if c.getCached(ctx, organizationsCacheKey, &organizations) {
		return organizations, nil
	}
	organizations, err := c.repo.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("cachedDatasetRepository.ListOrganizations: %w", err)
	}
	c.setCached(ctx, organizationsCacheKey, organizations)
	return organizations, nil
}

func (c *cachedDatasetRepository) ListDatasets(ctx context.Context, organization string) ([]model.Dataset, error) {
	key := c.getDatasetsCacheKey(organization)
	var datasets []model.Dataset
	if c.getCached(ctx, key, &datasets) {
		return datasets, nil
	}
	datasets, err := c.repo.ListDatasets(ctx, organization)
	if err != nil {
		return nil, fmt.Errorf("cachedDatasetRepository.ListDatasets: %w", err)
	}
	c.setCached(ctx, key, datasets)
	return datasets, nil
}

func (c *cachedDatasetRepository) getCached(ctx context.Context, key string, v interface{}) bool {
	b, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return gob.NewDecoder(bytes.NewReader(b)).Decode(v) == nil
}

func (c *cachedDatasetRepository) setCached(ctx context.Context, key string, v interface{}) {
	b, err := encodeGob(v)
	if err != nil {
		return
	}
	c.redis.Set(ctx, key, b, c.cacheTTL)
}

func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func NewCachedDatasetRepository(redis *redis.Client, repo DatasetRepository, cacheTTL time.Duration) DatasetRepository {
	return &cachedDatasetRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
