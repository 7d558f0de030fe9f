package repository

import (
	"context"

	"gorm.io/gorm"

	"volunteer-connect/internal/models"
)

// CreateOrganization inserts a new organization
func (r *Repository) CreateOrganization(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// GetOrganizationByID retrieves an organization, optionally with its opportunities
func (r *Repository) GetOrganizationByID(ctx context.Context, orgID uint, withOpportunities bool) (*models.Organization, error) {
	var org models.Organization
	query := r.db.WithContext(ctx)
	if withOpportunities {
		query = query.Preload("Opportunities", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})
	}

	if err := query.Where("id = ?", orgID).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// ListOrganizations retrieves all organizations ordered by id
func (r *Repository) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.WithContext(ctx).Order("id ASC").Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// OrganizationExists reports whether an organization with the given id exists
func (r *Repository) OrganizationExists(ctx context.Context, orgID uint) (bool, error) {
	return r.exists(ctx, &models.Organization{}, orgID)
}

// UpdateOrganization writes the mutable fields of org
func (r *Repository) UpdateOrganization(ctx context.Context, org *models.Organization) error {
	return r.update(ctx, org, "CreatedAt")
}

// DeleteOrganization removes an organization and every opportunity under it
func (r *Repository) DeleteOrganization(ctx context.Context, orgID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteOrganizations(tx, []uint{orgID})
	})
}

// deleteOrganizations cascades through opportunities before removing the
// organizations themselves. A single missing id is reported as not found.
func deleteOrganizations(tx *gorm.DB, orgIDs []uint) error {
	if len(orgIDs) == 0 {
		return nil
	}

	var oppIDs []uint
	if err := tx.Model(&models.Opportunity{}).Where("organization_id IN ?", orgIDs).Pluck("id", &oppIDs).Error; err != nil {
		return err
	}

	if err := deleteOpportunities(tx, oppIDs); err != nil {
		return err
	}

	result := tx.Where("id IN ?", orgIDs).Delete(&models.Organization{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
