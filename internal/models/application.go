package models

import (
	"time"

	"gorm.io/gorm"

	"volunteer-connect/internal/apperror"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the enumerated application statuses
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application represents a volunteer applying to an opportunity
type Application struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	UserID            uint              `gorm:"not null;index" json:"user_id"`
	OpportunityID     uint              `gorm:"not null;index" json:"opportunity_id"`
	MotivationMessage *string           `gorm:"type:text" json:"motivation_message"`
	Status            ApplicationStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	AppliedAt         time.Time         `gorm:"autoCreateTime;<-:create" json:"applied_at"`
}

// TableName specifies the table name for Application model
func (Application) TableName() string {
	return "applications"
}

func (a *Application) Validate() error {
	if a.UserID == 0 {
		return apperror.Validation("user_id", "User ID is required")
	}
	if a.OpportunityID == 0 {
		return apperror.Validation("opportunity_id", "Opportunity ID is required")
	}
	if !a.Status.Valid() {
		return apperror.Validation("status", "Status must be one of: pending, accepted, rejected")
	}
	return nil
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	return a.Validate()
}

func (a *Application) BeforeUpdate(tx *gorm.DB) error {
	return a.Validate()
}

type ApplicationResponse struct {
	ID                uint              `json:"id"`
	UserID            uint              `json:"user_id"`
	OpportunityID     uint              `json:"opportunity_id"`
	MotivationMessage *string           `json:"motivation_message"`
	Status            ApplicationStatus `json:"status"`
	AppliedAt         string            `json:"applied_at"`
}

func (a *Application) ToResponse() ApplicationResponse {
	return ApplicationResponse{
		ID:                a.ID,
		UserID:            a.UserID,
		OpportunityID:     a.OpportunityID,
		MotivationMessage: a.MotivationMessage,
		Status:            a.Status,
		AppliedAt:         formatTime(a.AppliedAt),
	}
}
