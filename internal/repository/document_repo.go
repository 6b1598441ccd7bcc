package repository

import (
	"context"

	"clientportal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository defines the interface for data access of Document entities
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) error
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *model.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Document, error) {
	var docs []model.Document
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
