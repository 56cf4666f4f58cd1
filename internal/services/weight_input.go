package services

import (
	"errors"
	"time"

	"github.com/skoskinen/painovahti/internal/models"
)

var (
	ErrWeightNotPositive = errors.New("weight must be greater than zero")
	ErrWeightUnrealistic = errors.New("weight value seems unrealistic (max 500 kg)")
	ErrInvalidDate       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrFutureWeightDate  = errors.New("cannot log weight for future dates")
)

// WeightInput is a candidate measurement before validation.
type WeightInput struct {
	Date     string
	WeightKg float64
	Notes    string
}

// ValidateWeightValue enforces the 0 < weight <= 500 kg range shared by the
// log and edit paths.
func ValidateWeightValue(weightKg float64) error {
	if weightKg <= 0 {
		return ErrWeightNotPositive
	}
	if weightKg > models.MaxWeightKg {
		return ErrWeightUnrealistic
	}
	return nil
}

// ValidateWeightInput runs the full logging pipeline and returns the
// normalized measurement day. Weight measurements are facts about the past
// or present, so future dates are rejected; dietary periods deliberately
// have no such restriction.
func ValidateWeightInput(input WeightInput, today time.Time, location *time.Location) (time.Time, error) {
	if err := ValidateWeightValue(input.WeightKg); err != nil {
		return time.Time{}, err
	}

	day, err := ParseDay(input.Date, location)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	if day.After(DateAtLocation(today, location)) {
		return time.Time{}, ErrFutureWeightDate
	}

	return day, nil
}

// IsWeightValidationError reports whether err is a caller-recoverable input
// failure rather than a store failure.
func IsWeightValidationError(err error) bool {
	return errors.Is(err, ErrWeightNotPositive) ||
		errors.Is(err, ErrWeightUnrealistic) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrFutureWeightDate)
}
