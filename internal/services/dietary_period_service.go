package services

import (
	"errors"
	"strings"
	"time"

	"github.com/skoskinen/painovahti/internal/models"
)

var (
	ErrPeriodCreateFailed = errors.New("create period failed")
	ErrPeriodLoadFailed   = errors.New("load periods failed")
	ErrPeriodNotFound     = errors.New("period not found")
	ErrPeriodEndFailed    = errors.New("end period failed")
	ErrPeriodUpdateFailed = errors.New("update period failed")
	ErrPeriodDeleteFailed = errors.New("delete period failed")
	ErrPeriodNoChanges    = errors.New("no changes made")
)

type DietaryPeriodRepository interface {
	ListByUser(userID uint) ([]models.DietaryPeriod, error)
	ListActive(userID uint, today time.Time) ([]models.DietaryPeriod, error)
	ListContainingDate(userID uint, day time.Time) ([]models.DietaryPeriod, error)
	FindByID(periodID uint) (models.DietaryPeriod, bool, error)
	Create(period *models.DietaryPeriod) error
	SetEndDate(periodID uint, endDate time.Time) (bool, error)
	UpdateFields(periodID uint, updates map[string]any) (bool, error)
	Deactivate(periodID uint) (bool, error)
	Delete(periodID uint) (bool, error)
}

// PeriodWeightReader resolves the exact-date weight samples the
// effectiveness calculation depends on.
type PeriodWeightReader interface {
	WeightOnDate(userID uint, day time.Time, location *time.Location) (float64, bool, error)
}

type DietaryPeriodService struct {
	periods DietaryPeriodRepository
	weights PeriodWeightReader
}

func NewDietaryPeriodService(periods DietaryPeriodRepository, weights PeriodWeightReader) *DietaryPeriodService {
	return &DietaryPeriodService{
		periods: periods,
		weights: weights,
	}
}

// CreatePeriod validates and persists a new experiment period. New periods
// start active; an omitted end date means the experiment is ongoing.
func (service *DietaryPeriodService) CreatePeriod(userID uint, input PeriodInput, location *time.Location) (models.DietaryPeriod, error) {
	normalized, err := ValidatePeriodInput(input, location)
	if err != nil {
		return models.DietaryPeriod{}, err
	}

	period := models.DietaryPeriod{
		UserID:       userID,
		StartDate:    normalized.StartDate,
		EndDate:      normalized.EndDate,
		Name:         normalized.Name,
		ProtocolType: normalized.ProtocolType,
		Description:  normalized.Description,
		Notes:        normalized.Notes,
		IsActive:     true,
	}
	if err := service.periods.Create(&period); err != nil {
		return models.DietaryPeriod{}, ErrPeriodCreateFailed
	}
	return period, nil
}

func (service *DietaryPeriodService) AllPeriods(userID uint) ([]models.DietaryPeriod, error) {
	return service.periods.ListByUser(userID)
}

func (service *DietaryPeriodService) ActivePeriods(userID uint, now time.Time, location *time.Location) ([]models.DietaryPeriod, error) {
	return service.periods.ListActive(userID, DateAtLocation(now, location))
}

func (service *DietaryPeriodService) PeriodsForDate(userID uint, day time.Time, location *time.Location) ([]models.DietaryPeriod, error) {
	return service.periods.ListContainingDate(userID, DateAtLocation(day, location))
}

// EndPeriod closes a period. An empty end date defaults to today; the end
// date may never precede the period's start.
func (service *DietaryPeriodService) EndPeriod(periodID uint, endDate string, now time.Time, location *time.Location) error {
	end := DateAtLocation(now, location)
	if strings.TrimSpace(endDate) != "" {
		parsed, err := ParseDay(endDate, location)
		if err != nil {
			return ErrInvalidPeriodEnd
		}
		end = parsed
	}

	period, found, err := service.periods.FindByID(periodID)
	if err != nil {
		return ErrPeriodLoadFailed
	}
	if !found {
		return ErrPeriodNotFound
	}
	if end.Before(period.StartDate) {
		return ErrPeriodEndBeforeStart
	}

	updated, err := service.periods.SetEndDate(periodID, end)
	if err != nil || !updated {
		return ErrPeriodEndFailed
	}
	return nil
}

// PeriodUpdate carries a partial update; nil fields are left untouched.
type PeriodUpdate struct {
	Name         *string
	Description  *string
	ProtocolType *string
	Notes        *string
	StartDate    *string
	EndDate      *string
	IsActive     *bool
}

// UpdatePeriod applies a partial update to the mutable fields of a period.
func (service *DietaryPeriodService) UpdatePeriod(periodID uint, update PeriodUpdate, location *time.Location) error {
	period, found, err := service.periods.FindByID(periodID)
	if err != nil {
		return ErrPeriodLoadFailed
	}
	if !found {
		return ErrPeriodNotFound
	}

	updates, err := buildPeriodUpdates(period, update, location)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return ErrPeriodNoChanges
	}

	updated, err := service.periods.UpdateFields(periodID, updates)
	if err != nil {
		return ErrPeriodUpdateFailed
	}
	if !updated {
		return ErrPeriodNoChanges
	}
	return nil
}

func buildPeriodUpdates(period models.DietaryPeriod, update PeriodUpdate, location *time.Location) (map[string]any, error) {
	updates := make(map[string]any)

	startDate := period.StartDate
	if update.StartDate != nil {
		parsed, err := ParseDay(*update.StartDate, location)
		if err != nil {
			return nil, ErrInvalidPeriodStart
		}
		startDate = parsed
		updates["start_date"] = parsed
	}

	if update.EndDate != nil {
		if strings.TrimSpace(*update.EndDate) == "" {
			updates["end_date"] = nil
		} else {
			parsed, err := ParseDay(*update.EndDate, location)
			if err != nil {
				return nil, ErrInvalidPeriodEnd
			}
			if parsed.Before(startDate) {
				return nil, ErrPeriodEndBeforeStart
			}
			updates["end_date"] = parsed
		}
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, ErrPeriodNameRequired
		}
		updates["name"] = name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.ProtocolType != nil {
		protocolType := strings.TrimSpace(*update.ProtocolType)
		if !models.IsValidProtocolType(protocolType) {
			protocolType = models.ProtocolCustom
		}
		updates["protocol_type"] = protocolType
	}
	if update.Notes != nil {
		updates["notes"] = *update.Notes
	}
	if update.IsActive != nil {
		updates["is_active"] = *update.IsActive
	}

	return updates, nil
}

// DeactivatePeriod soft-flags a period without deleting it or closing its
// date range.
func (service *DietaryPeriodService) DeactivatePeriod(periodID uint) error {
	updated, err := service.periods.Deactivate(periodID)
	if err != nil {
		return ErrPeriodUpdateFailed
	}
	if !updated {
		return ErrPeriodNotFound
	}
	return nil
}

func (service *DietaryPeriodService) DeletePeriod(periodID uint) error {
	deleted, err := service.periods.Delete(periodID)
	if err != nil {
		return ErrPeriodDeleteFailed
	}
	if !deleted {
		return ErrPeriodNotFound
	}
	return nil
}

// Summary builds the effectiveness summary for one period. Missing
// boundary-date weight samples leave the weight change empty; there is no
// nearest-date fallback.
func (service *DietaryPeriodService) Summary(periodID uint, now time.Time, location *time.Location) (PeriodSummary, error) {
	period, found, err := service.periods.FindByID(periodID)
	if err != nil {
		return PeriodSummary{}, ErrPeriodLoadFailed
	}
	if !found {
		return PeriodSummary{}, ErrPeriodNotFound
	}

	today := DateAtLocation(now, location)
	effectiveEnd, _ := EffectiveEndDate(period, today)

	startWeight, err := service.lookupWeight(period.UserID, period.StartDate, location)
	if err != nil {
		return PeriodSummary{}, err
	}
	endWeight, err := service.lookupWeight(period.UserID, effectiveEnd, location)
	if err != nil {
		return PeriodSummary{}, err
	}

	return BuildPeriodSummary(period, startWeight, endWeight, today), nil
}

func (service *DietaryPeriodService) lookupWeight(userID uint, day time.Time, location *time.Location) (*float64, error) {
	weight, found, err := service.weights.WeightOnDate(userID, day, location)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &weight, nil
}

// SuggestedProtocols lists the built-in experiment templates.
func (service *DietaryPeriodService) SuggestedProtocols() []models.SuggestedProtocol {
	return models.DefaultSuggestedProtocols()
}
