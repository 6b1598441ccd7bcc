package service

import (
	"context"

	"clientportal/internal/model"
	"clientportal/internal/repository"
	"clientportal/pkg/apperr"

	"go.uber.org/zap"
)

// --- DTOs ---

type CreateResourceTemplateInput struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=document_template calculator"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// --- Interface ---

type ResourceTemplateService interface {
	CreateResourceTemplate(ctx context.Context, input CreateResourceTemplateInput) (*model.ResourceTemplate, error)
	ListResourceTemplates(ctx context.Context) ([]model.ResourceTemplate, error)
	ListResourceTemplatesByType(ctx context.Context, templateType string) ([]model.ResourceTemplate, error)
}

type resourceTemplateService struct {
	repo repository.ResourceTemplateRepository
}

func NewResourceTemplateService(repo repository.ResourceTemplateRepository) ResourceTemplateService {
	return &resourceTemplateService{repo: repo}
}

// --- Implementation ---

func (s *resourceTemplateService) CreateResourceTemplate(ctx context.Context, input CreateResourceTemplateInput) (*model.ResourceTemplate, error) {
	tpl := &model.ResourceTemplate{
		Name:     input.Name,
		Type:     input.Type,
		Content:  input.Content,
		Category: input.Category,
	}

	if err := s.repo.Create(ctx, tpl); err != nil {
		zap.L().Error("resource template creation failed", zap.String("name", input.Name), zap.Error(err))
		return nil, apperr.FromStore(err, "resource template")
	}

	return tpl, nil
}

func (s *resourceTemplateService) ListResourceTemplates(ctx context.Context) ([]model.ResourceTemplate, error) {
	tpls, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("resource template list failed", zap.Error(err))
		return nil, apperr.FromStore(err, "resource templates")
	}
	return tpls, nil
}

// ListResourceTemplatesByType filters by the exact enum value
func (s *resourceTemplateService) ListResourceTemplatesByType(ctx context.Context, templateType string) ([]model.ResourceTemplate, error) {
	if !model.ValidResourceTemplateType(templateType) {
		return nil, apperr.Validationf("invalid resource template type %q", templateType)
	}

	tpls, err := s.repo.ListByType(ctx, templateType)
	if err != nil {
		zap.L().Error("resource template list by type failed", zap.String("type", templateType), zap.Error(err))
		return nil, apperr.FromStore(err, "resource templates")
	}
	return tpls, nil
}
