package model

import (
	"time"

	"github.com/google/uuid"
)

// Document is a metadata record describing an uploaded file. The file bytes
// live elsewhere; FileURL is an opaque locator.
type Document struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	RequestID      *uuid.UUID `gorm:"type:uuid;index" json:"request_id"`
	TaskID         *uuid.UUID `gorm:"type:uuid;index" json:"task_id"`
	UploaderID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"uploader_id"`
	Uploader       User       `gorm:"foreignKey:UploaderID" json:"-"`
	FileName       string     `gorm:"type:varchar(255);not null" json:"file_name"`
	FileURL        string     `gorm:"type:text;not null" json:"file_url"`
	MimeType       string     `gorm:"type:varchar(127);not null" json:"mime_type"`
	FileSize       int64      `gorm:"not null" json:"file_size"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
