package repository

import (
	"context"

	"clientportal/internal/model"

	"gorm.io/gorm"
)

// SessionRepository defines the interface for data access of login Sessions
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).First(&session, "session_token = ?", token).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("session_token = ?", token).Delete(&model.Session{}).Error
}
