package model

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationMember role enum constants
const (
	MemberRoleMember = "member"
	MemberRoleAdmin  = "admin"
)

// Organization is the root tenant entity. Every Request, Document and Invoice
// belongs to exactly one Organization; deleting one cascades to its dependents.
type Organization struct {
	ID          uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string               `gorm:"type:varchar(255);not null" json:"name"`
	Members     []OrganizationMember `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Requests    []Request            `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Documents   []Document           `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Invoices    []Invoice            `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ChatHistory []ChatHistory        `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

// OrganizationMember links a User to an Organization with a membership role
type OrganizationMember struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Role           string    `gorm:"type:varchar(20);not null" json:"role"` // member, admin
}
