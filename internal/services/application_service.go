package services

import (
	"context"
	"log"

	"volunteer-connect/internal/apperror"
	"volunteer-connect/internal/models"
	"volunteer-connect/internal/repository"
)

type CreateApplicationInput struct {
	UserID            *uint   `json:"user_id"`
	OpportunityID     *uint   `json:"opportunity_id"`
	MotivationMessage *string `json:"motivation_message"`
	Status            *string `json:"status"`
}

type UpdateApplicationInput struct {
	MotivationMessage *string `json:"motivation_message"`
	Status            *string `json:"status"`
}

func (in UpdateApplicationInput) isEmpty() bool {
	return in.MotivationMessage == nil && in.Status == nil
}

type ApplicationService struct {
	repo *repository.Repository
}

func NewApplicationService(repo *repository.Repository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

// CreateApplication records a user's application to an opportunity; status defaults to pending
func (s *ApplicationService) CreateApplication(ctx context.Context, input CreateApplicationInput) (*models.Application, error) {
	userID, err := requiredID(input.UserID, "user_id", "User ID is required")
	if err != nil {
		return nil, err
	}
	oppID, err := requiredID(input.OpportunityID, "opportunity_id", "Opportunity ID is required")
	if err != nil {
		return nil, err
	}

	app := &models.Application{
		UserID:            userID,
		OpportunityID:     oppID,
		MotivationMessage: input.MotivationMessage,
	}
	if input.Status != nil {
		status, err := applicationStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		app.Status = status
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := requireUser(ctx, tx, userID, "user_id"); err != nil {
			return err
		}
		if err := requireOpportunity(ctx, tx, oppID); err != nil {
			return err
		}
		return tx.CreateApplication(ctx, app)
	})
	if err != nil {
		return nil, storeError("create application", err)
	}

	log.Printf("Application submitted (ID: %d, user: %d, opportunity: %d)", app.ID, app.UserID, app.OpportunityID)
	return app, nil
}

// ListApplications retrieves applications, optionally filtered by user or opportunity
func (s *ApplicationService) ListApplications(ctx context.Context, filter repository.ApplicationFilter) ([]models.Application, error) {
	apps, err := s.repo.ListApplications(ctx, filter)
	if err != nil {
		return nil, storeError("list applications", err)
	}
	return apps, nil
}

func (s *ApplicationService) GetApplication(ctx context.Context, appID uint) (*models.Application, error) {
	app, err := s.repo.GetApplicationByID(ctx, appID)
	if err != nil {
		return nil, lookupError("get application", err, applicationNotFound())
	}
	return app, nil
}

// UpdateApplication changes the status or motivation message
func (s *ApplicationService) UpdateApplication(ctx context.Context, appID uint, input UpdateApplicationInput) (*models.Application, error) {
	if input.isEmpty() {
		return nil, errNoData
	}

	var status models.ApplicationStatus
	if input.Status != nil {
		var err error
		if status, err = applicationStatus(*input.Status); err != nil {
			return nil, err
		}
	}

	var app *models.Application
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		app, err = tx.GetApplicationByID(ctx, appID)
		if err != nil {
			return lookupError("update application", err, applicationNotFound())
		}

		if input.Status != nil {
			app.Status = status
		}
		if input.MotivationMessage != nil {
			app.MotivationMessage = input.MotivationMessage
		}
		return tx.UpdateApplication(ctx, app)
	})
	if err != nil {
		return nil, storeError("update application", err)
	}

	log.Printf("Application updated (ID: %d, status: %s)", app.ID, app.Status)
	return app, nil
}

func (s *ApplicationService) DeleteApplication(ctx context.Context, appID uint) error {
	if err := s.repo.DeleteApplication(ctx, appID); err != nil {
		return lookupError("delete application", err, applicationNotFound())
	}

	log.Printf("Application deleted (ID: %d)", appID)
	return nil
}

func applicationNotFound() *apperror.Error {
	return apperror.NotFound("id", "Application not found")
}

func applicationStatus(value string) (models.ApplicationStatus, error) {
	status := models.ApplicationStatus(value)
	if !status.Valid() {
		return "", apperror.Validation("status", "Status must be one of: pending, accepted, rejected")
	}
	return status, nil
}
