package repository

import (
	"context"

	"clientportal/internal/model"

	"gorm.io/gorm"
)

// ResourceTemplateRepository defines the interface for data access of ResourceTemplate entities
type ResourceTemplateRepository interface {
	Create(ctx context.Context, tpl *model.ResourceTemplate) error
	List(ctx context.Context) ([]model.ResourceTemplate, error)
	ListByType(ctx context.Context, templateType string) ([]model.ResourceTemplate, error)
}

type resourceTemplateRepository struct {
	db *gorm.DB
}

func NewResourceTemplateRepository(db *gorm.DB) ResourceTemplateRepository {
	return &resourceTemplateRepository{db: db}
}

func (r *resourceTemplateRepository) Create(ctx context.Context, tpl *model.ResourceTemplate) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

func (r *resourceTemplateRepository) List(ctx context.Context) ([]model.ResourceTemplate, error) {
	var tpls []model.ResourceTemplate
	if err := r.db.WithContext(ctx).Find(&tpls).Error; err != nil {
		return nil, err
	}
	return tpls, nil
}

// ListByType filters by the exact enum value, no partial matches
func (r *resourceTemplateRepository) ListByType(ctx context.Context, templateType string) ([]model.ResourceTemplate, error) {
	var tpls []model.ResourceTemplate
	if err := r.db.WithContext(ctx).Where("type = ?", templateType).Find(&tpls).Error; err != nil {
		return nil, err
	}
	return tpls, nil
}
