package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	apperrors "VCS_Link_Checker/internal/link-service/errors"
	"VCS_Link_Checker/internal/link-service/model"

	"github.com/elastic/go-elasticsearch/v9"
)

//go:generate mockgen -source=dataset_repository.go -destination=../mocks/repository/dataset_repository.go

// DatasetRepository reads datasets and organizations from the catalog search index.
type DatasetRepository interface {
	ListOrganizations(ctx context.Context) ([]model.Organization, error)
	// ListDatasets returns the datasets owned by organization, or every dataset
	// in the catalog when organization is empty.
	ListDatasets(ctx context.Context, organization string) ([]model.Dataset, error)
}

const defaultSearchPageSize = 500

type datasetRepository struct {
	es                *elasticsearch.Client
	datasetIndex      string
	organizationIndex string
	pageSize          int
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esSearchResponse struct {
	Hits struct {
		Hits []struct {
			Source json.RawMessage `json:"_source"`
			Sort   []interface{}   `json:"sort"`
		} `json:"hits"`
	} `json:"hits"`
}

func (d *datasetRepository) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	var organizations []model.Organization
	err := d.search(ctx, d.organizationIndex, map[string]interface{}{"match_all": map[string]interface{}{}}, func(source json.RawMessage) error {
		var org model.Organization
		if err := json.Unmarshal(source, &org); err != nil {
			return err
		}
		organizations = append(organizations, org)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("DatasetRepository.ListOrganizations: %w", err)
	}
	return organizations, nil
}

func (d *datasetRepository) ListDatasets(ctx context.Context, organization string) ([]model.Dataset, error) {
	query := map[string]interface{}{"match_all": map[string]interface{}{}}
	if organization != "" {
		query = map[string]interface{}{
			"term": map[string]interface{}{
				"organization": organization,
			},
		}
	}
	var datasets []model.Dataset
	err := d.search(ctx, d.datasetIndex, query, func(source json.RawMessage) error {
		var dataset model.Dataset
		if err := json.Unmarshal(source, &dataset); err != nil {
			return err
		}
		datasets = append(datasets, dataset)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("DatasetRepository.ListDatasets: %w", err)
	}
	return datasets, nil
}

// search pages through every hit of query sorted by name, using search_after.
func (d *datasetRepository) search(ctx context.Context, index string, query map[string]interface{}, each func(source json.RawMessage) error) error {
	var searchAfter []interface{}
	for {
		body := map[string]interface{}{
			"size":  d.pageSize,
			"query": query,
			"sort": []map[string]interface{}{
				{
					"name": map[string]interface{}{
						"order": "asc",
					},
				},
			},
		}
		if searchAfter != nil {
			body["search_after"] = searchAfter
		}
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode query: %w", err)
		}
		res, err := d.es.Search(
			d.es.Search.WithContext(ctx),
			d.es.Search.WithIndex(index),
			d.es.Search.WithBody(&buf))
		if err != nil {
			return err
		}

		var searchRes esSearchResponse
		if res.IsError() {
			var e esErrorResponse
			err = json.NewDecoder(res.Body).Decode(&e)
			res.Body.Close()
			if err != nil {
				return fmt.Errorf("decode err response: %w", err)
			}
			return apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason)
		}
		err = json.NewDecoder(res.Body).Decode(&searchRes)
		res.Body.Close()
		if err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}

		hits := searchRes.Hits.Hits
		for _, hit := range hits {
			if err = each(hit.Source); err != nil {
				return fmt.Errorf("decode hit: %w", err)
			}
		}
		if len(hits) < d.pageSize {
			return nil
		}
		searchAfter = hits[len(hits)-1].Sort
	}
}

func NewDatasetRepository(es *elasticsearch.Client, datasetIndex string, organizationIndex string) DatasetRepository {
	return &datasetRepository{
		es:                es,
		datasetIndex:      datasetIndex,
		organizationIndex: organizationIndex,
		pageSize:          defaultSearchPageSize,
	}
}
