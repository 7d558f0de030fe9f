package repository

import (
	"context"

	"gorm.io/gorm"

	"volunteer-connect/internal/models"
)

// CreateUser inserts a new user
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by exact, case-sensitive email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers retrieves all users ordered by id
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UserExists reports whether a user with the given id exists
func (r *Repository) UserExists(ctx context.Context, userID uint) (bool, error) {
	return r.exists(ctx, &models.User{}, userID)
}

// DeleteUser removes a user together with the organizations it owns (and
// everything under them) and its own applications and payments. Opportunities
// it merely created lose their created_by reference.
func (r *Repository) DeleteUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orgIDs []uint
		if err := tx.Model(&models.Organization{}).Where("owner_id = ?", userID).Pluck("id", &orgIDs).Error; err != nil {
			return err
		}

		if err := deleteOrganizations(tx, orgIDs); err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Opportunity{}).
			Where("created_by = ?", userID).
			UpdateColumn("created_by", nil).Error; err != nil {
			return err
		}

		return deleteByID(tx, &models.User{}, userID)
	})
}
