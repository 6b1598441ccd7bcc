package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Invoice amounts cross the wire as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// PaymentStatus enum constants
const (
	PaymentDraft   = "Draft"
	PaymentSent    = "Sent"
	PaymentPaid    = "Paid"
	PaymentOverdue = "Overdue"
)

// Invoice is a billing record with a globally unique number and a payment
// lifecycle status. Amount carries currency-scale precision (2 fractional digits).
type Invoice struct {
	ID                   uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrganizationID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"organization_id"`
	InvoiceNumber        string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoice_number"`
	Amount               decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency             string          `gorm:"type:varchar(3);not null" json:"currency"`
	DueDate              time.Time       `gorm:"not null" json:"due_date"`
	IssueDate            time.Time       `gorm:"not null" json:"issue_date"`
	PaymentStatus        string          `gorm:"type:varchar(20);not null;default:'Draft';index" json:"payment_status"` // Draft, Sent, Paid, Overdue
	PaymentTransactionID *string         `gorm:"type:varchar(255)" json:"payment_transaction_id"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ValidPaymentStatus reports whether status is a member of the payment status enum
func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentDraft, PaymentSent, PaymentPaid, PaymentOverdue:
		return true
	}
	return false
}
