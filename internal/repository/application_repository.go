package repository

import (
	"context"

	"volunteer-connect/internal/models"
)

// ApplicationFilter narrows ListApplications; nil fields are ignored
type ApplicationFilter struct {
	UserID        *uint
	OpportunityID *uint
}

// CreateApplication inserts a new application
func (r *Repository) CreateApplication(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// GetApplicationByID retrieves an application by ID
func (r *Repository) GetApplicationByID(ctx context.Context, appID uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).Where("id = ?", appID).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListApplications retrieves applications ordered by id
func (r *Repository) ListApplications(ctx context.Context, filter ApplicationFilter) ([]models.Application, error) {
	var apps []models.Application
	query := r.db.WithContext(ctx)

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.OpportunityID != nil {
		query = query.Where("opportunity_id = ?", *filter.OpportunityID)
	}

	if err := query.Order("id ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplication writes the mutable fields of app
func (r *Repository) UpdateApplication(ctx context.Context, app *models.Application) error {
	return r.update(ctx, app, "AppliedAt")
}

// DeleteApplication removes an application
func (r *Repository) DeleteApplication(ctx context.Context, appID uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Application{}, appID)
}
