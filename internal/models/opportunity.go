package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"volunteer-connect/internal/apperror"
)

// Opportunity represents a volunteer opportunity posted by an organization
type Opportunity struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrganizationID uint      `gorm:"not null;index" json:"organization_id"`
	CreatedBy      *uint     `gorm:"index" json:"created_by"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Description    *string   `gorm:"type:text" json:"description"`
	Location       *string   `gorm:"size:200" json:"location"`
	Duration       *int      `json:"duration"` // hours
	CreatedAt      time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Applications []Application `gorm:"foreignKey:OpportunityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Payments     []Payment     `gorm:"foreignKey:OpportunityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Opportunity model
func (Opportunity) TableName() string {
	return "opportunities"
}

func (o *Opportunity) Validate() error {
	if strings.TrimSpace(o.Title) == "" {
		return apperror.Validation("title", "Title is required")
	}
	if o.OrganizationID == 0 {
		return apperror.Validation("organization_id", "Organization ID is required")
	}
	if o.Duration != nil && *o.Duration < 0 {
		return apperror.Validation("duration", "Duration must not be negative")
	}
	return nil
}

func (o *Opportunity) BeforeSave(tx *gorm.DB) error {
	return o.Validate()
}

type OpportunityResponse struct {
	ID             uint    `json:"id"`
	OrganizationID uint    `json:"organization_id"`
	CreatedBy      *uint   `json:"created_by"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	Location       *string `json:"location"`
	Duration       *int    `json:"duration"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func (o *Opportunity) ToResponse() OpportunityResponse {
	return OpportunityResponse{
		ID:             o.ID,
		OrganizationID: o.OrganizationID,
		CreatedBy:      o.CreatedBy,
		Title:          o.Title,
		Description:    o.Description,
		Location:       o.Location,
		Duration:       o.Duration,
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
}
