package repository

import (
	"context"

	"clientportal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestRepository defines the interface for data access of Request entities
type RequestRepository interface {
	Create(ctx context.Context, req *model.Request) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Request, error)
	List(ctx context.Context) ([]model.Request, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Request, error)
	Update(ctx context.Context, req *model.Request) error
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *model.Request) error {
	return GetDB(ctx, r.db).Create(req).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Request, error) {
	var req model.Request
	if err := GetDB(ctx, r.db).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) List(ctx context.Context) ([]model.Request, error) {
	var reqs []model.Request
	if err := GetDB(ctx, r.db).Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *requestRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Request, error) {
	var reqs []model.Request
	if err := GetDB(ctx, r.db).Where("organization_id = ?", orgID).Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *requestRepository) Update(ctx context.Context, req *model.Request) error {
	return GetDB(ctx, r.db).Save(req).Error
}
