package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"volunteer-connect/internal/apperror"
)

// Organization represents a group that posts volunteer opportunities
type Organization struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Location    *string   `gorm:"size:200" json:"location"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`

	// Relationships
	Opportunities []Opportunity `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Organization model
func (Organization) TableName() string {
	return "organizations"
}

func (o *Organization) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return apperror.Validation("name", "Organization name is required")
	}
	if o.OwnerID == 0 {
		return apperror.Validation("owner_id", "Owner ID is required")
	}
	return nil
}

func (o *Organization) BeforeSave(tx *gorm.DB) error {
	return o.Validate()
}

// OrganizationResponse holds the scalar fields only; the owner is referenced by id
type OrganizationResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	OwnerID     uint    `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
}

// OrganizationDetailResponse adds the organization's opportunities.
// OpportunityResponse only carries organization_id, so nothing loops back here.
type OrganizationDetailResponse struct {
	OrganizationResponse
	Opportunities []OpportunityResponse `json:"opportunities"`
}

func (o *Organization) ToResponse() OrganizationResponse {
	return OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Location:    o.Location,
		OwnerID:     o.OwnerID,
		CreatedAt:   formatTime(o.CreatedAt),
	}
}

func (o *Organization) ToDetailResponse() OrganizationDetailResponse {
	opportunities := make([]OpportunityResponse, 0, len(o.Opportunities))
	for i := range o.Opportunities {
		opportunities = append(opportunities, o.Opportunities[i].ToResponse())
	}

	return OrganizationDetailResponse{
		OrganizationResponse: o.ToResponse(),
		Opportunities:        opportunities,
	}
}
