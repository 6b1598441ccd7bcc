package service

import (
	"context"
	"testing"
	"time"

	"clientportal/internal/model"
	"clientportal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validInvoiceInput() CreateInvoiceInput {
	return CreateInvoiceInput{
		OrganizationID: uuid.NewString(),
		InvoiceNumber:  "INV-2026-0042",
		Amount:         decimal.RequireFromString("1250.50"),
		Currency:       "TND",
		DueDate:        time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		IssueDate:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateInvoiceStartsDraft(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, nil)

	invoice, err := svc.CreateInvoice(context.Background(), validInvoiceInput())
	require.NoError(t, err)
	require.Equal(t, model.PaymentDraft, invoice.PaymentStatus)
	require.Nil(t, invoice.PaymentTransactionID)
	require.True(t, invoice.Amount.Equal(decimal.RequireFromString("1250.50")))
}

func TestCreateInvoiceRejectsNonPositiveAmount(t *testing.T) {
	svc := NewInvoiceService(newFakeInvoiceRepo(), nil)

	for _, raw := range []string{"0", "-10.00"} {
		input := validInvoiceInput()
		input.Amount = decimal.RequireFromString(raw)
		_, err := svc.CreateInvoice(context.Background(), input)
		require.ErrorIs(t, err, apperr.ErrValidation, "amount %s", raw)
	}
}

func TestCreateInvoiceRejectsSubCentAmount(t *testing.T) {
	svc := NewInvoiceService(newFakeInvoiceRepo(), nil)

	input := validInvoiceInput()
	input.Amount = decimal.RequireFromString("10.005")
	_, err := svc.CreateInvoice(context.Background(), input)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCreateInvoiceDuplicateNumber(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, nil)

	first := validInvoiceInput()
	_, err := svc.CreateInvoice(context.Background(), first)
	require.NoError(t, err)

	second := validInvoiceInput()
	second.OrganizationID = uuid.NewString() // uniqueness is global, not per-tenant
	_, err = svc.CreateInvoice(context.Background(), second)
	require.ErrorIs(t, err, apperr.ErrDuplicateKey)
}

func TestUpdateInvoicePaymentFields(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, nil)

	created, err := svc.CreateInvoice(context.Background(), validInvoiceInput())
	require.NoError(t, err)

	updated, err := svc.UpdateInvoice(context.Background(), created.ID.String(), UpdateInvoiceInput{
		PaymentStatus:        Some(model.PaymentPaid),
		PaymentTransactionID: Some("txn_8842"),
	})
	require.NoError(t, err)
	require.Equal(t, model.PaymentPaid, updated.PaymentStatus)
	require.NotNil(t, updated.PaymentTransactionID)
	require.Equal(t, "txn_8842", *updated.PaymentTransactionID)

	// Explicit null clears the transaction reference again
	cleared, err := svc.UpdateInvoice(context.Background(), created.ID.String(), UpdateInvoiceInput{
		PaymentTransactionID: Null[string](),
	})
	require.NoError(t, err)
	require.Nil(t, cleared.PaymentTransactionID)
	require.Equal(t, model.PaymentPaid, cleared.PaymentStatus, "omitted status stays untouched")
}

func TestUpdateInvoiceBackwardStatusAllowed(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, nil)

	created, err := svc.CreateInvoice(context.Background(), validInvoiceInput())
	require.NoError(t, err)

	_, err = svc.UpdateInvoice(context.Background(), created.ID.String(), UpdateInvoiceInput{
		PaymentStatus: Some(model.PaymentPaid),
	})
	require.NoError(t, err)

	reverted, err := svc.UpdateInvoice(context.Background(), created.ID.String(), UpdateInvoiceInput{
		PaymentStatus: Some(model.PaymentDraft),
	})
	require.NoError(t, err)
	require.Equal(t, model.PaymentDraft, reverted.PaymentStatus)
}

func TestUpdateInvoiceInvalidStatus(t *testing.T) {
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(repo, nil)

	created, err := svc.CreateInvoice(context.Background(), validInvoiceInput())
	require.NoError(t, err)

	_, err = svc.UpdateInvoice(context.Background(), created.ID.String(), UpdateInvoiceInput{
		PaymentStatus: Some("Refunded"),
	})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateInvoiceNotFound(t *testing.T) {
	svc := NewInvoiceService(newFakeInvoiceRepo(), nil)

	_, err := svc.UpdateInvoice(context.Background(), uuid.NewString(), UpdateInvoiceInput{
		PaymentStatus: Some(model.PaymentSent),
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
