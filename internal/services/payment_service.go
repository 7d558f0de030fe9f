package services

import (
	"context"
	"encoding/json"
	"log"

	"volunteer-connect/internal/apperror"
	"volunteer-connect/internal/models"
	"volunteer-connect/internal/repository"
)

type CreatePaymentInput struct {
	UserID        *uint           `json:"user_id"`
	OpportunityID *uint           `json:"opportunity_id"`
	Amount        json.RawMessage `json:"amount"`
	PaymentStatus *string         `json:"payment_status"`
}

type UpdatePaymentInput struct {
	Amount        json.RawMessage `json:"amount"`
	PaymentStatus *string         `json:"payment_status"`
}

func (in UpdatePaymentInput) isEmpty() bool {
	_, hasAmount := rawScalar(in.Amount)
	return !hasAmount && in.PaymentStatus == nil
}

type PaymentService struct {
	repo *repository.Repository
}

func NewPaymentService(repo *repository.Repository) *PaymentService {
	return &PaymentService{repo: repo}
}

// CreatePayment records a payment by a user against an opportunity
func (s *PaymentService) CreatePayment(ctx context.Context, input CreatePaymentInput) (*models.Payment, error) {
	userID, err := requiredID(input.UserID, "user_id", "User ID is required")
	if err != nil {
		return nil, err
	}
	oppID, err := requiredID(input.OpportunityID, "opportunity_id", "Opportunity ID is required")
	if err != nil {
		return nil, err
	}
	amount, present, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, apperror.Validation("amount", "Amount is required")
	}

	payment := &models.Payment{
		UserID:        userID,
		OpportunityID: oppID,
		Amount:        amount,
	}
	if input.PaymentStatus != nil {
		status, err := paymentStatus(*input.PaymentStatus)
		if err != nil {
			return nil, err
		}
		payment.PaymentStatus = status
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := requireUser(ctx, tx, userID, "user_id"); err != nil {
			return err
		}
		if err := requireOpportunity(ctx, tx, oppID); err != nil {
			return err
		}
		return tx.CreatePayment(ctx, payment)
	})
	if err != nil {
		return nil, storeError("create payment", err)
	}

	log.Printf("Payment recorded (ID: %d, amount: %s, status: %s)", payment.ID, payment.Amount.StringFixed(2), payment.PaymentStatus)
	return payment, nil
}

// ListPayments retrieves payments matching filter
func (s *PaymentService) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]models.Payment, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperror.Validation("payment_status", "Payment status must be one of: pending, completed, failed")
	}

	payments, err := s.repo.ListPayments(ctx, filter)
	if err != nil {
		return nil, storeError("list payments", err)
	}
	return payments, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, paymentID uint) (*models.Payment, error) {
	payment, err := s.repo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, lookupError("get payment", err, paymentNotFound())
	}
	return payment, nil
}

// UpdatePayment changes the amount or status of a payment
func (s *PaymentService) UpdatePayment(ctx context.Context, paymentID uint, input UpdatePaymentInput) (*models.Payment, error) {
	if input.isEmpty() {
		return nil, errNoData
	}

	amount, hasAmount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	var status models.PaymentStatus
	if input.PaymentStatus != nil {
		if status, err = paymentStatus(*input.PaymentStatus); err != nil {
			return nil, err
		}
	}

	var payment *models.Payment
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		payment, err = tx.GetPaymentByID(ctx, paymentID)
		if err != nil {
			return lookupError("update payment", err, paymentNotFound())
		}

		if hasAmount {
			payment.Amount = amount
		}
		if input.PaymentStatus != nil {
			payment.PaymentStatus = status
		}
		return tx.UpdatePayment(ctx, payment)
	})
	if err != nil {
		return nil, storeError("update payment", err)
	}

	log.Printf("Payment updated (ID: %d, status: %s)", payment.ID, payment.PaymentStatus)
	return payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, paymentID uint) error {
	if err := s.repo.DeletePayment(ctx, paymentID); err != nil {
		return lookupError("delete payment", err, paymentNotFound())
	}

	log.Printf("Payment deleted (ID: %d)", paymentID)
	return nil
}

func paymentNotFound() *apperror.Error {
	return apperror.NotFound("id", "Payment not found")
}

func paymentStatus(value string) (models.PaymentStatus, error) {
	status := models.PaymentStatus(value)
	if !status.Valid() {
		return "", apperror.Validation("payment_status", "Payment status must be one of: pending, completed, failed")
	}
	return status, nil
}
