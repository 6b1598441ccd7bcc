package service

import (
	"context"

	"clientportal/internal/events"
	"clientportal/internal/model"
	"clientportal/internal/repository"
	"clientportal/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- DTOs ---

type CreateDocumentInput struct {
	OrganizationID string  `json:"organization_id" binding:"required,uuid"`
	RequestID      *string `json:"request_id" binding:"omitempty,uuid"`
	TaskID         *string `json:"task_id" binding:"omitempty,uuid"`
	UploaderID     string  `json:"uploader_id" binding:"required,uuid"`
	FileName       string  `json:"file_name" binding:"required"`
	FileURL        string  `json:"file_url" binding:"required"`
	MimeType       string  `json:"mime_type" binding:"required"`
	FileSize       int64   `json:"file_size" binding:"min=0"`
}

// --- Interface ---

type DocumentService interface {
	CreateDocument(ctx context.Context, input CreateDocumentInput) (*model.Document, error)
	ListDocumentsByOrganization(ctx context.Context, orgID string) ([]model.Document, error)
}

type documentService struct {
	repo repository.DocumentRepository
	hub  *events.Hub
}

func NewDocumentService(repo repository.DocumentRepository, hub *events.Hub) DocumentService {
	return &documentService{repo: repo, hub: hub}
}

// --- Implementation ---

// CreateDocument records file metadata; the bytes live behind FileURL.
// Missing organization, request, task or uploader surfaces as NotFound via
// the store's foreign-key constraints.
func (s *documentService) CreateDocument(ctx context.Context, input CreateDocumentInput) (*model.Document, error) {
	orgID, err := uuid.Parse(input.OrganizationID)
	if err != nil {
		return nil, apperr.Validationf("invalid organization id %q", input.OrganizationID)
	}
	uploaderID, err := uuid.Parse(input.UploaderID)
	if err != nil {
		return nil, apperr.Validationf("invalid uploader id %q", input.UploaderID)
	}

	doc := &model.Document{
		OrganizationID: orgID,
		UploaderID:     uploaderID,
		FileName:       input.FileName,
		FileURL:        input.FileURL,
		MimeType:       input.MimeType,
		FileSize:       input.FileSize,
	}

	if input.RequestID != nil {
		requestID, parseErr := uuid.Parse(*input.RequestID)
		if parseErr != nil {
			return nil, apperr.Validationf("invalid request id %q", *input.RequestID)
		}
		doc.RequestID = &requestID
	}
	if input.TaskID != nil {
		taskID, parseErr := uuid.Parse(*input.TaskID)
		if parseErr != nil {
			return nil, apperr.Validationf("invalid task id %q", *input.TaskID)
		}
		doc.TaskID = &taskID
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		zap.L().Error("document creation failed",
			zap.String("organization_id", input.OrganizationID),
			zap.String("file_name", input.FileName),
			zap.Error(err))
		return nil, apperr.FromStore(err, "document")
	}

	if s.hub != nil {
		s.hub.Publish(events.ActionCreated, "document", doc)
	}
	return doc, nil
}

func (s *documentService) ListDocumentsByOrganization(ctx context.Context, orgID string) ([]model.Document, error) {
	id, err := uuid.Parse(orgID)
	if err != nil {
		return nil, apperr.Validationf("invalid organization id %q", orgID)
	}

	docs, err := s.repo.ListByOrganization(ctx, id)
	if err != nil {
		zap.L().Error("document list by organization failed", zap.String("organization_id", orgID), zap.Error(err))
		return nil, apperr.FromStore(err, "documents")
	}
	return docs, nil
}
