package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"volunteer-connect/internal/apperror"
)

var (
	maxDurationHours = decimal.NewFromInt(math.MaxInt32)
	// decimal(12,2)
	maxAmount = decimal.New(1, 10)
)

// rawScalar extracts the textual value of a JSON scalar. Absent, null and
// empty-string values report ok=false.
func rawScalar(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return string(trimmed), true
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}

	return string(trimmed), true
}

// parseDuration accepts a JSON number or numeric string of whole hours
func parseDuration(raw json.RawMessage) (*int, error) {
	text, ok := rawScalar(raw)
	if !ok {
		return nil, nil
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, apperror.Validation("duration", "Duration must be a numeric value")
	}
	if d.IsNegative() {
		return nil, apperror.Validation("duration", "Duration must not be negative")
	}
	if !d.IsInteger() {
		return nil, apperror.Validation("duration", "Duration must be a whole number of hours")
	}
	if d.GreaterThan(maxDurationHours) {
		return nil, apperror.Validation("duration", "Duration is too large")
	}

	hours := int(d.IntPart())
	return &hours, nil
}

// parseAmount accepts a JSON number or numeric string. present=false means the field was not supplied.
func parseAmount(raw json.RawMessage) (amount decimal.Decimal, present bool, err error) {
	text, ok := rawScalar(raw)
	if !ok {
		return decimal.Zero, false, nil
	}

	d, perr := decimal.NewFromString(text)
	if perr != nil {
		return decimal.Zero, true, apperror.Validation("amount", "Amount must be a numeric value")
	}
	if !d.IsPositive() {
		return decimal.Zero, true, apperror.Validation("amount", "Amount must be positive")
	}
	if !d.Equal(d.Round(2)) {
		return decimal.Zero, true, apperror.Validation("amount", "Amount must have at most two decimal places")
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, true, apperror.Validation("amount", "Amount is too large")
	}

	return d, true, nil
}

// requiredString returns the trimmed value or a validation error naming field
func requiredString(value *string, field, message string) (string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", apperror.Validation(field, message)
	}
	return strings.TrimSpace(*value), nil
}

// requiredID returns the id or a validation error naming field
func requiredID(value *uint, field, message string) (uint, error) {
	if value == nil || *value == 0 {
		return 0, apperror.Validation(field, message)
	}
	return *value, nil
}
