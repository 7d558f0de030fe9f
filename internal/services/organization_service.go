package services

import (
	"context"
	"log"
	"strings"

	"volunteer-connect/internal/apperror"
	"volunteer-connect/internal/models"
	"volunteer-connect/internal/repository"
)

type CreateOrganizationInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	OwnerID     *uint   `json:"owner_id"`
}

// UpdateOrganizationInput carries a partial update; only non-nil fields are written
type UpdateOrganizationInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	OwnerID     *uint   `json:"owner_id"`
}

func (in UpdateOrganizationInput) isEmpty() bool {
	return in.Name == nil && in.Description == nil && in.Location == nil && in.OwnerID == nil
}

type OrganizationService struct {
	repo *repository.Repository
}

func NewOrganizationService(repo *repository.Repository) *OrganizationService {
	return &OrganizationService{repo: repo}
}

// CreateOrganization validates and stores a new organization owned by an existing user
func (s *OrganizationService) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*models.Organization, error) {
	name, err := requiredString(input.Name, "name", "Organization name is required")
	if err != nil {
		return nil, err
	}
	ownerID, err := requiredID(input.OwnerID, "owner_id", "Owner ID is required")
	if err != nil {
		return nil, err
	}

	org := &models.Organization{
		Name:        name,
		Description: input.Description,
		Location:    input.Location,
		OwnerID:     ownerID,
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := requireUser(ctx, tx, ownerID, "owner_id"); err != nil {
			return err
		}
		return tx.CreateOrganization(ctx, org)
	})
	if err != nil {
		return nil, storeError("create organization", err)
	}

	log.Printf("Organization created: %q (ID: %d, owner: %d)", org.Name, org.ID, org.OwnerID)
	return org, nil
}

// ListOrganizations retrieves all organizations
func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs, err := s.repo.ListOrganizations(ctx)
	if err != nil {
		return nil, storeError("list organizations", err)
	}
	return orgs, nil
}

// GetOrganization retrieves an organization with its opportunities
func (s *OrganizationService) GetOrganization(ctx context.Context, orgID uint) (*models.Organization, error) {
	org, err := s.repo.GetOrganizationByID(ctx, orgID, true)
	if err != nil {
		return nil, lookupError("get organization", err, organizationNotFound("id"))
	}
	return org, nil
}

// UpdateOrganization applies the fields present in input
func (s *OrganizationService) UpdateOrganization(ctx context.Context, orgID uint, input UpdateOrganizationInput) (*models.Organization, error) {
	if input.isEmpty() {
		return nil, errNoData
	}

	var org *models.Organization
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		org, err = tx.GetOrganizationByID(ctx, orgID, false)
		if err != nil {
			return lookupError("update organization", err, organizationNotFound("id"))
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return apperror.Validation("name", "Organization name is required")
			}
			org.Name = name
		}
		if input.Description != nil {
			org.Description = input.Description
		}
		if input.Location != nil {
			org.Location = input.Location
		}
		if input.OwnerID != nil {
			if err := requireUser(ctx, tx, *input.OwnerID, "owner_id"); err != nil {
				return err
			}
			org.OwnerID = *input.OwnerID
		}

		return tx.UpdateOrganization(ctx, org)
	})
	if err != nil {
		return nil, storeError("update organization", err)
	}

	return org, nil
}

// DeleteOrganization removes an organization and its opportunities
func (s *OrganizationService) DeleteOrganization(ctx context.Context, orgID uint) error {
	if err := s.repo.DeleteOrganization(ctx, orgID); err != nil {
		return lookupError("delete organization", err, organizationNotFound("id"))
	}

	log.Printf("Organization deleted with cascade (ID: %d)", orgID)
	return nil
}

func organizationNotFound(field string) *apperror.Error {
	return apperror.NotFound(field, "Organization not found")
}

// requireUser reports a not-found error on field when the user does not exist
func requireUser(ctx context.Context, repo *repository.Repository, userID uint, field string) error {
	ok, err := repo.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return userNotFound(field)
	}
	return nil
}
