package service

import (
	"context"
	"errors"

	"clientportal/internal/events"
	"clientportal/internal/model"
	"clientportal/internal/repository"
	"clientportal/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateRequestInput struct {
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
}

// UpdateRequestInput applies only the fields present in the payload.
// Status accepts any enum value; transitions are caller-driven.
type UpdateRequestInput struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Status      Optional[string] `json:"status"`
}

// --- Interface ---

type RequestService interface {
	CreateRequest(ctx context.Context, input CreateRequestInput) (*model.Request, error)
	ListRequests(ctx context.Context) ([]model.Request, error)
	ListRequestsByOrganization(ctx context.Context, orgID string) ([]model.Request, error)
	UpdateRequest(ctx context.Context, id string, input UpdateRequestInput) (*model.Request, error)
}

type requestService struct {
	repo      repository.RequestRepository
	orgRepo   repository.OrganizationRepository
	txManager repository.TransactionManager
	hub       *events.Hub
}

func NewRequestService(
	repo repository.RequestRepository,
	orgRepo repository.OrganizationRepository,
	txManager repository.TransactionManager,
	hub *events.Hub,
) RequestService {
	return &requestService{repo: repo, orgRepo: orgRepo, txManager: txManager, hub: hub}
}

// --- Implementation ---

// CreateRequest verifies the owning organization and inserts the row inside
// one transaction, so the existence check cannot race a concurrent delete.
// New requests always start in Open regardless of input.
func (s *requestService) CreateRequest(ctx context.Context, input CreateRequestInput) (*model.Request, error) {
	orgID, err := uuid.Parse(input.OrganizationID)
	if err != nil {
		return nil, apperr.Validationf("invalid organization id %q", input.OrganizationID)
	}

	request := &model.Request{
		OrganizationID: orgID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         model.RequestOpen,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		exists, checkErr := s.orgRepo.Exists(txCtx, orgID)
		if checkErr != nil {
			return apperr.FromStore(checkErr, "organization")
		}
		if !exists {
			return apperr.NotFoundf("organization %s", orgID)
		}
		if createErr := s.repo.Create(txCtx, request); createErr != nil {
			return apperr.FromStore(createErr, "request")
		}
		return nil
	})
	if err != nil {
		zap.L().Error("request creation failed", zap.String("organization_id", input.OrganizationID), zap.Error(err))
		return nil, err
	}

	s.publish(events.ActionCreated, request)
	return request, nil
}

func (s *requestService) ListRequests(ctx context.Context) ([]model.Request, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("request list failed", zap.Error(err))
		return nil, apperr.FromStore(err, "requests")
	}
	return requests, nil
}

func (s *requestService) ListRequestsByOrganization(ctx context.Context, orgID string) ([]model.Request, error) {
	id, err := uuid.Parse(orgID)
	if err != nil {
		return nil, apperr.Validationf("invalid organization id %q", orgID)
	}

	requests, err := s.repo.ListByOrganization(ctx, id)
	if err != nil {
		zap.L().Error("request list by organization failed", zap.String("organization_id", orgID), zap.Error(err))
		return nil, apperr.FromStore(err, "requests")
	}
	return requests, nil
}

// UpdateRequest applies only the provided fields. updatedAt refreshes on
// every successful call even when no field changed.
func (s *requestService) UpdateRequest(ctx context.Context, id string, input UpdateRequestInput) (*model.Request, error) {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid request id %q", id)
	}

	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("request %s", id)
		}
		zap.L().Error("request fetch failed", zap.String("id", id), zap.Error(err))
		return nil, apperr.FromStore(err, "request")
	}

	if input.Title.Set {
		if !input.Title.Valid {
			return nil, apperr.Validationf("title cannot be null")
		}
		request.Title = input.Title.Value
	}
	if input.Description.Set {
		if !input.Description.Valid {
			return nil, apperr.Validationf("description cannot be null")
		}
		request.Description = input.Description.Value
	}
	if input.Status.Set {
		if !input.Status.Valid || !model.ValidRequestStatus(input.Status.Value) {
			return nil, apperr.Validationf("invalid request status %q", input.Status.Value)
		}
		request.Status = input.Status.Value
	}

	if err := s.repo.Update(ctx, request); err != nil {
		zap.L().Error("request update failed", zap.String("id", id), zap.Error(err))
		return nil, apperr.FromStore(err, "request")
	}

	s.publish(events.ActionUpdated, request)
	return request, nil
}

func (s *requestService) publish(action string, request *model.Request) {
	if s.hub != nil {
		s.hub.Publish(action, "request", request)
	}
}
