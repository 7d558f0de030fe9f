package repository

import (
	"context"

	"gorm.io/gorm"

	"volunteer-connect/internal/models"
)

// OpportunityFilter narrows ListOpportunities; nil fields are ignored
type OpportunityFilter struct {
	OrganizationID *uint
}

// CreateOpportunity inserts a new opportunity
func (r *Repository) CreateOpportunity(ctx context.Context, opp *models.Opportunity) error {
	return r.db.WithContext(ctx).Create(opp).Error
}

// GetOpportunityByID retrieves an opportunity by ID
func (r *Repository) GetOpportunityByID(ctx context.Context, oppID uint) (*models.Opportunity, error) {
	var opp models.Opportunity
	err := r.db.WithContext(ctx).Where("id = ?", oppID).First(&opp).Error
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

// ListOpportunities retrieves opportunities ordered by id
func (r *Repository) ListOpportunities(ctx context.Context, filter OpportunityFilter) ([]models.Opportunity, error) {
	var opps []models.Opportunity
	query := r.db.WithContext(ctx)

	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	}

	if err := query.Order("id ASC").Find(&opps).Error; err != nil {
		return nil, err
	}
	return opps, nil
}

// OpportunityExists reports whether an opportunity with the given id exists
func (r *Repository) OpportunityExists(ctx context.Context, oppID uint) (bool, error) {
	return r.exists(ctx, &models.Opportunity{}, oppID)
}

// UpdateOpportunity writes the mutable fields of opp and refreshes updated_at
func (r *Repository) UpdateOpportunity(ctx context.Context, opp *models.Opportunity) error {
	return r.update(ctx, opp, "CreatedAt")
}

// DeleteOpportunity removes an opportunity with its applications and payments
func (r *Repository) DeleteOpportunity(ctx context.Context, oppID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("opportunity_id = ?", oppID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("opportunity_id = ?", oppID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.Opportunity{}, oppID)
	})
}

func deleteOpportunities(tx *gorm.DB, oppIDs []uint) error {
	if len(oppIDs) == 0 {
		return nil
	}

	if err := tx.Where("opportunity_id IN ?", oppIDs).Delete(&models.Application{}).Error; err != nil {
		return err
	}
	if err := tx.Where("opportunity_id IN ?", oppIDs).Delete(&models.Payment{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", oppIDs).Delete(&models.Opportunity{}).Error
}
