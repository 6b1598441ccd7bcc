package model

import (
	"time"

	"github.com/google/uuid"
)

// ResourceTemplateType enum constants
const (
	TemplateDocument   = "document_template"
	TemplateCalculator = "calculator"
)

// ResourceTemplate is tenant-independent reference content: a document
// template or a calculator description. Read-mostly.
type ResourceTemplate struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Type      string    `gorm:"type:varchar(30);not null;index" json:"type"` // document_template, calculator
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"type:varchar(100);not null" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ValidResourceTemplateType reports whether t is a member of the template type enum
func ValidResourceTemplateType(t string) bool {
	return t == TemplateDocument || t == TemplateCalculator
}
