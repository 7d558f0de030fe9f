package services

import (
	"context"
	"log"

	"volunteer-connect/internal/apperror"
	"volunteer-connect/internal/models"
	"volunteer-connect/internal/repository"
)

// UserService handles user-related business logic
type UserService struct {
	repo *repository.Repository
}

// NewUserService creates a new UserService
func NewUserService(repo *repository.Repository) *UserService {
	return &UserService{repo: repo}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, lookupError("get user", err, userNotFound("id"))
	}
	return user, nil
}

// ListUsers retrieves all users
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

// DeleteUser removes a user and everything it owns
func (s *UserService) DeleteUser(ctx context.Context, userID uint) error {
	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return lookupError("delete user", err, userNotFound("id"))
	}

	log.Printf("User deleted with cascade (ID: %d)", userID)
	return nil
}

func userNotFound(field string) *apperror.Error {
	return apperror.NotFound(field, "User not found")
}
