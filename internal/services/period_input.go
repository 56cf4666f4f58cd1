package services

import (
	"errors"
	"strings"
	"time"

	"github.com/skoskinen/painovahti/internal/models"
)

var (
	ErrInvalidPeriodStart   = errors.New("invalid start date format, use YYYY-MM-DD")
	ErrInvalidPeriodEnd     = errors.New("invalid end date format, use YYYY-MM-DD")
	ErrPeriodEndBeforeStart = errors.New("end date must not be before start date")
	ErrPeriodNameRequired   = errors.New("period name is required")
)

// PeriodInput is a candidate dietary period before validation.
type PeriodInput struct {
	StartDate    string
	EndDate      string
	Name         string
	ProtocolType string
	Description  string
	Notes        string
}

// NormalizedPeriodInput is a validated period ready for persistence.
type NormalizedPeriodInput struct {
	StartDate    time.Time
	EndDate      *time.Time
	Name         string
	ProtocolType string
	Description  string
	Notes        string
}

// ValidatePeriodInput runs the creation pipeline: parseable start date,
// optional end date not before the start, non-blank name. Unknown protocol
// tags normalize to custom. An end date equal to the start date is a valid
// single-day period.
func ValidatePeriodInput(input PeriodInput, location *time.Location) (NormalizedPeriodInput, error) {
	start, err := ParseDay(input.StartDate, location)
	if err != nil {
		return NormalizedPeriodInput{}, ErrInvalidPeriodStart
	}

	var end *time.Time
	if strings.TrimSpace(input.EndDate) != "" {
		parsed, err := ParseDay(input.EndDate, location)
		if err != nil {
			return NormalizedPeriodInput{}, ErrInvalidPeriodEnd
		}
		if parsed.Before(start) {
			return NormalizedPeriodInput{}, ErrPeriodEndBeforeStart
		}
		end = &parsed
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return NormalizedPeriodInput{}, ErrPeriodNameRequired
	}

	protocolType := strings.TrimSpace(input.ProtocolType)
	if !models.IsValidProtocolType(protocolType) {
		protocolType = models.ProtocolCustom
	}

	return NormalizedPeriodInput{
		StartDate:    start,
		EndDate:      end,
		Name:         name,
		ProtocolType: protocolType,
		Description:  input.Description,
		Notes:        input.Notes,
	}, nil
}

// IsPeriodValidationError reports whether err is a caller-recoverable input
// failure rather than a store failure.
func IsPeriodValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPeriodStart) ||
		errors.Is(err, ErrInvalidPeriodEnd) ||
		errors.Is(err, ErrPeriodEndBeforeStart) ||
		errors.Is(err, ErrPeriodNameRequired)
}
