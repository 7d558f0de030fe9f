package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the only component that talks to the store. A Repository
// obtained inside Transaction shares that transaction.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Transaction runs fn atomically. Any error returned by fn rolls back every write made through tx.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// exists reports whether a row of model's table has the given id
func (r *Repository) exists(ctx context.Context, model interface{}, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// update writes every column of value except the immutable ones
func (r *Repository) update(ctx context.Context, value interface{}, immutable ...string) error {
	omit := append([]string{clause.Associations}, immutable...)
	return r.db.WithContext(ctx).Model(value).Select("*").Omit(omit...).Updates(value).Error
}

// deleteByID removes one row and reports gorm.ErrRecordNotFound when nothing matched
func deleteByID(tx *gorm.DB, model interface{}, id uint) error {
	result := tx.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
