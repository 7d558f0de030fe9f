package repository

import (
	"context"

	"volunteer-connect/internal/models"
)

// PaymentFilter narrows ListPayments; nil fields are ignored
type PaymentFilter struct {
	UserID        *uint
	OpportunityID *uint
	Status        *models.PaymentStatus
}

// CreatePayment inserts a new payment
func (r *Repository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetPaymentByID retrieves a payment by ID
func (r *Repository) GetPaymentByID(ctx context.Context, paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Where("id = ?", paymentID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListPayments retrieves payments ordered by id
func (r *Repository) ListPayments(ctx context.Context, filter PaymentFilter) ([]models.Payment, error) {
	var payments []models.Payment
	query := r.db.WithContext(ctx)

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.OpportunityID != nil {
		query = query.Where("opportunity_id = ?", *filter.OpportunityID)
	}
	if filter.Status != nil {
		query = query.Where("payment_status = ?", *filter.Status)
	}

	if err := query.Order("id ASC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// UpdatePayment writes amount and status; payment_date never changes
func (r *Repository) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	return r.update(ctx, payment, "PaymentDate")
}

// DeletePayment removes a payment
func (r *Repository) DeletePayment(ctx context.Context, paymentID uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Payment{}, paymentID)
}
