package repository

import (
	"context"

	"clientportal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatHistoryRepository defines the interface for data access of ChatHistory
// entries. Append-only; no update or delete.
type ChatHistoryRepository interface {
	Create(ctx context.Context, entry *model.ChatHistory) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ChatHistory, error)
}

type chatHistoryRepository struct {
	db *gorm.DB
}

func NewChatHistoryRepository(db *gorm.DB) ChatHistoryRepository {
	return &chatHistoryRepository{db: db}
}

func (r *chatHistoryRepository) Create(ctx context.Context, entry *model.ChatHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByUser returns the user's history most recent first. Descending
// timestamp order is contractual for this query.
func (r *chatHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ChatHistory, error) {
	var entries []model.ChatHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
