package service

import (
	"context"
	"errors"

	"clientportal/internal/model"
	"clientportal/internal/repository"
	"clientportal/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

// --- Interface ---

// OrganizationService defines the business logic for the tenant entity.
// GetOrganizationByID returns (nil, nil) for an absent id.
type OrganizationService interface {
	CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*model.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*model.Organization, error)
	ListOrganizations(ctx context.Context) ([]model.Organization, error)
}

type organizationService struct {
	repo repository.OrganizationRepository
}

func NewOrganizationService(repo repository.OrganizationRepository) OrganizationService {
	return &organizationService{repo: repo}
}

// --- Implementation ---

func (s *organizationService) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*model.Organization, error) {
	org := &model.Organization{Name: req.Name}

	if err := s.repo.Create(ctx, org); err != nil {
		zap.L().Error("organization creation failed", zap.String("name", req.Name), zap.Error(err))
		return nil, apperr.FromStore(err, "organization")
	}

	return org, nil
}

func (s *organizationService) GetOrganizationByID(ctx context.Context, id string) (*model.Organization, error) {
	orgID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid organization id %q", id)
	}

	org, err := s.repo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		zap.L().Error("organization lookup failed", zap.String("id", id), zap.Error(err))
		return nil, apperr.FromStore(err, "organization")
	}

	return org, nil
}

func (s *organizationService) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	orgs, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("organization list failed", zap.Error(err))
		return nil, apperr.FromStore(err, "organizations")
	}
	return orgs, nil
}
