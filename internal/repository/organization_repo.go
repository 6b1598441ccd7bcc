package repository

import (
	"context"

	"clientportal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository defines the interface for data access of Organization entities
type OrganizationRepository interface {
	Create(ctx context.Context, org *model.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]model.Organization, error)
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *model.Organization) error {
	return GetDB(ctx, r.db).Create(org).Error
}

func (r *organizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := GetDB(ctx, r.db).First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// Exists checks organization presence without loading the row.
// Participates in the createRequest transaction via GetDB.
func (r *organizationRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Organization{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *organizationRepository) List(ctx context.Context) ([]model.Organization, error) {
	var orgs []model.Organization
	if err := GetDB(ctx, r.db).Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}
