package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatHistory is an append-only record of one assistant exchange.
// Rows are never updated or deleted.
type ChatHistory struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Query          string     `gorm:"type:text;not null" json:"query"`
	Response       string     `gorm:"type:text;not null" json:"response"`
	Timestamp      time.Time  `gorm:"autoCreateTime;index" json:"timestamp"`
	IsGuest        bool       `gorm:"not null" json:"is_guest"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id"`
}

// TableName keeps the singular table name used by the portal schema
func (ChatHistory) TableName() string {
	return "chat_history"
}
