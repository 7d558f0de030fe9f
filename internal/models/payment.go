package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"volunteer-connect/internal/apperror"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Valid reports whether s is one of the enumerated payment statuses
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// Payment represents a donation or fee recorded against an opportunity
type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	OpportunityID uint            `gorm:"not null;index" json:"opportunity_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentStatus PaymentStatus   `gorm:"size:20;not null;default:pending;index" json:"payment_status"`
	PaymentDate   time.Time       `gorm:"autoCreateTime;<-:create" json:"payment_date"`
}

// TableName specifies the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) Validate() error {
	if p.UserID == 0 {
		return apperror.Validation("user_id", "User ID is required")
	}
	if p.OpportunityID == 0 {
		return apperror.Validation("opportunity_id", "Opportunity ID is required")
	}
	if !p.Amount.IsPositive() {
		return apperror.Validation("amount", "Amount must be positive")
	}
	if !p.PaymentStatus.Valid() {
		return apperror.Validation("payment_status", "Payment status must be one of: pending, completed, failed")
	}
	return nil
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentStatus == "" {
		p.PaymentStatus = PaymentStatusPending
	}
	return p.Validate()
}

func (p *Payment) BeforeUpdate(tx *gorm.DB) error {
	return p.Validate()
}

type PaymentResponse struct {
	ID            uint            `json:"id"`
	UserID        uint            `json:"user_id"`
	OpportunityID uint            `json:"opportunity_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentDate   string          `json:"payment_date"`
}

func (p *Payment) ToResponse() PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		OpportunityID: p.OpportunityID,
		Amount:        p.Amount,
		PaymentStatus: p.PaymentStatus,
		PaymentDate:   formatTime(p.PaymentDate),
	}
}
