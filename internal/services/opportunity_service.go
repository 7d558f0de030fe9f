package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"volunteer-connect/internal/apperror"
	"volunteer-connect/internal/models"
	"volunteer-connect/internal/repository"
)

type CreateOpportunityInput struct {
	OrganizationID *uint           `json:"organization_id"`
	CreatedBy      *uint           `json:"created_by"`
	Title          *string         `json:"title"`
	Description    *string         `json:"description"`
	Location       *string         `json:"location"`
	Duration       json.RawMessage `json:"duration"`
}

// UpdateOpportunityInput carries a partial update; only supplied fields are written
type UpdateOpportunityInput struct {
	OrganizationID *uint           `json:"organization_id"`
	CreatedBy      *uint           `json:"created_by"`
	Title          *string         `json:"title"`
	Description    *string         `json:"description"`
	Location       *string         `json:"location"`
	Duration       json.RawMessage `json:"duration"`
}

func (in UpdateOpportunityInput) isEmpty() bool {
	_, hasDuration := rawScalar(in.Duration)
	return in.OrganizationID == nil && in.CreatedBy == nil && in.Title == nil &&
		in.Description == nil && in.Location == nil && !hasDuration
}

type OpportunityService struct {
	repo *repository.Repository
}

func NewOpportunityService(repo *repository.Repository) *OpportunityService {
	return &OpportunityService{repo: repo}
}

// CreateOpportunity validates and stores a new opportunity under an existing organization
func (s *OpportunityService) CreateOpportunity(ctx context.Context, input CreateOpportunityInput) (*models.Opportunity, error) {
	title, err := requiredString(input.Title, "title", "Title is required")
	if err != nil {
		return nil, err
	}
	duration, err := parseDuration(input.Duration)
	if err != nil {
		return nil, err
	}
	orgID, err := requiredID(input.OrganizationID, "organization_id", "Organization ID is required")
	if err != nil {
		return nil, err
	}

	opp := &models.Opportunity{
		OrganizationID: orgID,
		CreatedBy:      input.CreatedBy,
		Title:          title,
		Description:    input.Description,
		Location:       input.Location,
		Duration:       duration,
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := requireOrganization(ctx, tx, orgID); err != nil {
			return err
		}
		if input.CreatedBy != nil {
			if err := requireUser(ctx, tx, *input.CreatedBy, "created_by"); err != nil {
				return err
			}
		}
		return tx.CreateOpportunity(ctx, opp)
	})
	if err != nil {
		return nil, storeError("create opportunity", err)
	}

	log.Printf("Opportunity created: %q (ID: %d, organization: %d)", opp.Title, opp.ID, opp.OrganizationID)
	return opp, nil
}

// ListOpportunities retrieves opportunities, optionally for one organization
func (s *OpportunityService) ListOpportunities(ctx context.Context, filter repository.OpportunityFilter) ([]models.Opportunity, error) {
	opps, err := s.repo.ListOpportunities(ctx, filter)
	if err != nil {
		return nil, storeError("list opportunities", err)
	}
	return opps, nil
}

// GetOpportunity retrieves an opportunity by ID
func (s *OpportunityService) GetOpportunity(ctx context.Context, oppID uint) (*models.Opportunity, error) {
	opp, err := s.repo.GetOpportunityByID(ctx, oppID)
	if err != nil {
		return nil, lookupError("get opportunity", err, opportunityNotFound("id"))
	}
	return opp, nil
}

// UpdateOpportunity applies the fields present in input and refreshes updated_at
func (s *OpportunityService) UpdateOpportunity(ctx context.Context, oppID uint, input UpdateOpportunityInput) (*models.Opportunity, error) {
	if input.isEmpty() {
		return nil, errNoData
	}

	duration, err := parseDuration(input.Duration)
	if err != nil {
		return nil, err
	}

	var opp *models.Opportunity
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		opp, err = tx.GetOpportunityByID(ctx, oppID)
		if err != nil {
			return lookupError("update opportunity", err, opportunityNotFound("id"))
		}

		if input.Title != nil {
			title := strings.TrimSpace(*input.Title)
			if title == "" {
				return apperror.Validation("title", "Title is required")
			}
			opp.Title = title
		}
		if input.Description != nil {
			opp.Description = input.Description
		}
		if input.Location != nil {
			opp.Location = input.Location
		}
		if duration != nil {
			opp.Duration = duration
		}
		if input.OrganizationID != nil {
			if err := requireOrganization(ctx, tx, *input.OrganizationID); err != nil {
				return err
			}
			opp.OrganizationID = *input.OrganizationID
		}
		if input.CreatedBy != nil {
			if err := requireUser(ctx, tx, *input.CreatedBy, "created_by"); err != nil {
				return err
			}
			opp.CreatedBy = input.CreatedBy
		}

		return tx.UpdateOpportunity(ctx, opp)
	})
	if err != nil {
		return nil, storeError("update opportunity", err)
	}

	return opp, nil
}

// DeleteOpportunity removes an opportunity with its applications and payments
func (s *OpportunityService) DeleteOpportunity(ctx context.Context, oppID uint) error {
	if err := s.repo.DeleteOpportunity(ctx, oppID); err != nil {
		return lookupError("delete opportunity", err, opportunityNotFound("id"))
	}

	log.Printf("Opportunity deleted with cascade (ID: %d)", oppID)
	return nil
}

func opportunityNotFound(field string) *apperror.Error {
	return apperror.NotFound(field, "Opportunity not found")
}

func requireOrganization(ctx context.Context, repo *repository.Repository, orgID uint) error {
	ok, err := repo.OrganizationExists(ctx, orgID)
	if err != nil {
		return err
	}
	if !ok {
		return organizationNotFound("organization_id")
	}
	return nil
}

func requireOpportunity(ctx context.Context, repo *repository.Repository, oppID uint) error {
	ok, err := repo.OpportunityExists(ctx, oppID)
	if err != nil {
		return err
	}
	if !ok {
		return opportunityNotFound("opportunity_id")
	}
	return nil
}
