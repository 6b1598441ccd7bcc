package service

import (
	"context"

	"clientportal/internal/assistant"
	"clientportal/internal/model"
	"clientportal/internal/repository"
	"clientportal/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- DTOs ---

type CreateChatHistoryInput struct {
	UserID         string  `json:"user_id" binding:"required,uuid"`
	Query          string  `json:"query" binding:"required"`
	Response       string  `json:"response" binding:"required"`
	IsGuest        bool    `json:"is_guest"`
	OrganizationID *string `json:"organization_id" binding:"omitempty,uuid"`
}

// AskInput runs the canned-answer assistant and persists the exchange
type AskInput struct {
	UserID         string  `json:"user_id" binding:"required,uuid"`
	Query          string  `json:"query" binding:"required"`
	IsGuest        bool    `json:"is_guest"`
	OrganizationID *string `json:"organization_id" binding:"omitempty,uuid"`
}

// --- Interface ---

type ChatService interface {
	CreateChatHistory(ctx context.Context, input CreateChatHistoryInput) (*model.ChatHistory, error)
	Ask(ctx context.Context, input AskInput) (*model.ChatHistory, error)
	ListChatHistoryByUser(ctx context.Context, userID string) ([]model.ChatHistory, error)
}

type chatService struct {
	repo repository.ChatHistoryRepository
}

func NewChatService(repo repository.ChatHistoryRepository) ChatService {
	return &chatService{repo: repo}
}

// --- Implementation ---

func (s *chatService) CreateChatHistory(ctx context.Context, input CreateChatHistoryInput) (*model.ChatHistory, error) {
	entry, err := buildChatEntry(input.UserID, input.OrganizationID, input.Query, input.Response, input.IsGuest)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		zap.L().Error("chat history creation failed", zap.String("user_id", input.UserID), zap.Error(err))
		return nil, apperr.FromStore(err, "chat history")
	}

	return entry, nil
}

// Ask generates the assistant's canned reply for the query and appends the
// exchange to the user's history in one step.
func (s *chatService) Ask(ctx context.Context, input AskInput) (*model.ChatHistory, error) {
	reply := assistant.Reply(input.Query)

	entry, err := buildChatEntry(input.UserID, input.OrganizationID, input.Query, reply, input.IsGuest)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		zap.L().Error("assistant exchange persist failed", zap.String("user_id", input.UserID), zap.Error(err))
		return nil, apperr.FromStore(err, "chat history")
	}

	return entry, nil
}

// ListChatHistoryByUser returns the user's exchanges most recent first
func (s *chatService) ListChatHistoryByUser(ctx context.Context, userID string) ([]model.ChatHistory, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user id %q", userID)
	}

	entries, err := s.repo.ListByUser(ctx, id)
	if err != nil {
		zap.L().Error("chat history list failed", zap.String("user_id", userID), zap.Error(err))
		return nil, apperr.FromStore(err, "chat history")
	}
	return entries, nil
}

func buildChatEntry(userID string, orgID *string, query, response string, isGuest bool) (*model.ChatHistory, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user id %q", userID)
	}

	entry := &model.ChatHistory{
		UserID:   uid,
		Query:    query,
		Response: response,
		IsGuest:  isGuest,
	}

	if orgID != nil {
		oid, parseErr := uuid.Parse(*orgID)
		if parseErr != nil {
			return nil, apperr.Validationf("invalid organization id %q", *orgID)
		}
		entry.OrganizationID = &oid
	}

	return entry, nil
}
