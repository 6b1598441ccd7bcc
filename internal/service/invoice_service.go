package service

import (
	"context"
	"errors"
	"time"

	"clientportal/internal/events"
	"clientportal/internal/model"
	"clientportal/internal/repository"
	"clientportal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateInvoiceInput struct {
	OrganizationID string          `json:"organization_id" binding:"required,uuid"`
	InvoiceNumber  string          `json:"invoice_number" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       string          `json:"currency" binding:"required,len=3"`
	DueDate        time.Time       `json:"due_date" binding:"required"`
	IssueDate      time.Time       `json:"issue_date" binding:"required"`
}

// UpdateInvoiceInput applies only the fields present in the payload. An
// explicit null clears payment_transaction_id.
type UpdateInvoiceInput struct {
	PaymentStatus        Optional[string] `json:"payment_status"`
	PaymentTransactionID Optional[string] `json:"payment_transaction_id"`
}

// --- Interface ---

type InvoiceService interface {
	CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*model.Invoice, error)
	ListInvoicesByOrganization(ctx context.Context, orgID string) ([]model.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, input UpdateInvoiceInput) (*model.Invoice, error)
}

type invoiceService struct {
	repo repository.InvoiceRepository
	hub  *events.Hub
}

func NewInvoiceService(repo repository.InvoiceRepository, hub *events.Hub) InvoiceService {
	return &invoiceService{repo: repo, hub: hub}
}

// --- Implementation ---

// CreateInvoice inserts a billing record. Payment status always starts at
// Draft with no transaction id regardless of input. The amount must be
// positive with at most two fractional digits; the invoice number is
// globally unique and a duplicate insert fails with DuplicateKey.
func (s *invoiceService) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*model.Invoice, error) {
	orgID, err := uuid.Parse(input.OrganizationID)
	if err != nil {
		return nil, apperr.Validationf("invalid organization id %q", input.OrganizationID)
	}

	if !input.Amount.IsPositive() {
		return nil, apperr.Validationf("amount must be positive, got %s", input.Amount)
	}
	if input.Amount.Exponent() < -2 {
		return nil, apperr.Validationf("amount %s exceeds currency scale (2 fractional digits)", input.Amount)
	}

	invoice := &model.Invoice{
		OrganizationID: orgID,
		InvoiceNumber:  input.InvoiceNumber,
		Amount:         input.Amount,
		Currency:       input.Currency,
		DueDate:        input.DueDate,
		IssueDate:      input.IssueDate,
		PaymentStatus:  model.PaymentDraft,
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		zap.L().Error("invoice creation failed",
			zap.String("invoice_number", input.InvoiceNumber),
			zap.Error(err))
		return nil, apperr.FromStore(err, "invoice")
	}

	s.publish(events.ActionCreated, invoice)
	return invoice, nil
}

func (s *invoiceService) ListInvoicesByOrganization(ctx context.Context, orgID string) ([]model.Invoice, error) {
	id, err := uuid.Parse(orgID)
	if err != nil {
		return nil, apperr.Validationf("invalid organization id %q", orgID)
	}

	invoices, err := s.repo.ListByOrganization(ctx, id)
	if err != nil {
		zap.L().Error("invoice list by organization failed", zap.String("organization_id", orgID), zap.Error(err))
		return nil, apperr.FromStore(err, "invoices")
	}
	return invoices, nil
}

// UpdateInvoice applies only the provided fields. Any payment status value is
// accepted, including backwards moves; callers decide transition legality.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, input UpdateInvoiceInput) (*model.Invoice, error) {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid invoice id %q", id)
	}

	invoice, err := s.repo.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("invoice %s", id)
		}
		zap.L().Error("invoice fetch failed", zap.String("id", id), zap.Error(err))
		return nil, apperr.FromStore(err, "invoice")
	}

	if input.PaymentStatus.Set {
		if !input.PaymentStatus.Valid || !model.ValidPaymentStatus(input.PaymentStatus.Value) {
			return nil, apperr.Validationf("invalid payment status %q", input.PaymentStatus.Value)
		}
		invoice.PaymentStatus = input.PaymentStatus.Value
	}
	if input.PaymentTransactionID.Set {
		if input.PaymentTransactionID.Valid {
			txnID := input.PaymentTransactionID.Value
			invoice.PaymentTransactionID = &txnID
		} else {
			invoice.PaymentTransactionID = nil
		}
	}

	if err := s.repo.Update(ctx, invoice); err != nil {
		zap.L().Error("invoice update failed", zap.String("id", id), zap.Error(err))
		return nil, apperr.FromStore(err, "invoice")
	}

	s.publish(events.ActionUpdated, invoice)
	return invoice, nil
}

func (s *invoiceService) publish(action string, invoice *model.Invoice) {
	if s.hub != nil {
		s.hub.Publish(action, "invoice", invoice)
	}
}
