package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus enum constants
const (
	RequestOpen       = "Open"
	RequestInProgress = "In Progress"
	RequestCompleted  = "Completed"
	RequestClosed     = "Closed"
)

// Request is a client's service engagement record. New requests always start
// in Open; transitions are caller-driven with no enforced state machine.
type Request struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	Title          string     `gorm:"type:varchar(255);not null" json:"title"`
	Description    string     `gorm:"type:text;not null" json:"description"`
	Status         string     `gorm:"type:varchar(30);not null;default:'Open';index" json:"status"` // Open, In Progress, Completed, Closed
	Tasks          []Task     `gorm:"foreignKey:RequestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Documents      []Document `gorm:"foreignKey:RequestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// ValidRequestStatus reports whether status is a member of the request status enum
func ValidRequestStatus(status string) bool {
	switch status {
	case RequestOpen, RequestInProgress, RequestCompleted, RequestClosed:
		return true
	}
	return false
}
