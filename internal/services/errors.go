package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"volunteer-connect/internal/apperror"
)

// storeError passes *apperror.Error values through (model hooks return them)
// and hides anything else behind a generic store error.
func storeError(op string, err error) error {
	var ae *apperror.Error
	if errors.As(err, &ae) {
		return ae
	}

	log.Printf("Store failure during %s: %v", op, err)
	return apperror.Store(err)
}

// lookupError maps a missing row to notFound and everything else through storeError
func lookupError(op string, err error, notFound *apperror.Error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return storeError(op, err)
}

var errNoData = apperror.Validation("", "No data provided")
