package repository

import (
	"context"
	"fmt"

	"VCS_Link_Checker/internal/link-service/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=resource_repository.go -destination=../mocks/repository/resource_repository.go

// ResourceRepository maintains the local mirror of the catalog's resources.
type ResourceRepository interface {
	UpsertResource(ctx context.Context, resource model.Resource) error
	DeleteResourceByID(ctx context.Context, resourceID string) error
	GetResourcesByIDs(ctx context.Context, resourceIDs []string) ([]model.Resource, error)
}

type resourceRepository struct {
	db *gorm.DB
}

func (r *resourceRepository) UpsertResource(ctx context.Context, resource model.Resource) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"dataset_id", "url", "last_modified"}),
	}).Create(&resource).Error
	if err != nil {
		return fmt.Errorf("ResourceRepository.UpsertResource: %w", err)
	}
	return nil
}

func (r *resourceRepository) DeleteResourceByID(ctx context.Context, resourceID string) error {
	err := r.db.WithContext(ctx).Where("id = ?", resourceID).Delete(&model.Resource{}).Error
	if err != nil {
		return fmt.Errorf("ResourceRepository.DeleteResourceByID: %w", err)
	}
	return nil
}

func (r *resourceRepository) GetResourcesByIDs(ctx context.Context, resourceIDs []string) ([]model.Resource, error) {
	if len(resourceIDs) == 0 {
		return nil, nil
	}
	var resources []model.Resource
	err := r.db.WithContext(ctx).Where("id IN ?", resourceIDs).Find(&resources).Error
	if err != nil {
		return nil, fmt.Errorf("ResourceRepository.GetResourcesByIDs: %w", err)
	}
	return resources, nil
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{
		db: db,
	}
}
