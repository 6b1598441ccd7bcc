package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRole enum constants
const (
	RoleGuest          = "Guest"
	RoleClientUser     = "Client-User"
	RoleClientAdmin    = "Client-Admin"
	RoleFirmAccountant = "Firm-Accountant"
	RoleSystemAdmin    = "System-Admin"
)

// User represents a portal account: firm staff, client-organization members and guests.
// Role is assigned at registration and immutable afterwards.
type User struct {
	ID           uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string        `gorm:"type:varchar(255);not null" json:"name"`
	Role         string        `gorm:"type:varchar(30);not null" json:"role"` // Guest, Client-User, Client-Admin, Firm-Accountant, System-Admin
	PasswordHash string        `gorm:"type:varchar(255)" json:"-"`            // Empty for provider-based accounts
	Accounts     []Account     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Sessions     []Session     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ChatHistory  []ChatHistory `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// Account stores an external auth-provider link for a user.
// Carried for compatibility with the provider-based sign-in flow.
type Account struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type              string    `gorm:"type:varchar(50);not null" json:"type"`
	Provider          string    `gorm:"type:varchar(100);not null" json:"provider"`
	ProviderAccountID string    `gorm:"type:varchar(255);not null" json:"provider_account_id"`
	RefreshToken      *string   `gorm:"type:text" json:"refresh_token"`
	AccessToken       *string   `gorm:"type:text" json:"access_token"`
	ExpiresAt         *int64    `json:"expires_at"`
	TokenType         *string   `gorm:"type:varchar(50)" json:"token_type"`
	Scope             *string   `gorm:"type:text" json:"scope"`
	IDToken           *string   `gorm:"type:text" json:"id_token"`
	SessionState      *string   `gorm:"type:text" json:"session_state"`
}

// Session stores a long-lived login session token for a user
type Session struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SessionToken string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"session_token"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Expires      time.Time `gorm:"not null" json:"expires"`
}

// ValidUserRole reports whether role is a member of the user role enum
func ValidUserRole(role string) bool {
	switch role {
	case RoleGuest, RoleClientUser, RoleClientAdmin, RoleFirmAccountant, RoleSystemAdmin:
		return true
	}
	return false
}
