package repository

import (
	"context"

	"clientportal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceRepository defines the interface for data access of Invoice entities
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Invoice, error)
	Update(ctx context.Context, invoice *model.Invoice) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}
