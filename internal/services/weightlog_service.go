package services

import (
	"errors"
	"time"

	"github.com/skoskinen/painovahti/internal/models"
)

var (
	ErrWeightLogCreateFailed = errors.New("create weight log failed")
	ErrWeightLogLoadFailed   = errors.New("load weight logs failed")
	ErrWeightLogNotFound     = errors.New("weight log not found")
	ErrWeightLogUpdateFailed = errors.New("update weight log failed")
	ErrWeightLogDeleteFailed = errors.New("delete weight log failed")
)

type WeightLogRepository interface {
	ListByUser(userID uint) ([]models.WeightLog, error)
	ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.WeightLog, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.WeightLog, bool, error)
	FindLatest(userID uint) (models.WeightLog, bool, error)
	FindByID(logID uint) (models.WeightLog, bool, error)
	Create(entry *models.WeightLog) error
	UpdateWeightAndNotes(logID uint, weightKg float64, notes string) (bool, error)
	Delete(logID uint) (bool, error)
	CountByUser(userID uint) (int64, error)
}

type PeriodReader interface {
	ListByUser(userID uint) ([]models.DietaryPeriod, error)
}

type WeightLogService struct {
	logs    WeightLogRepository
	periods PeriodReader
}

func NewWeightLogService(logs WeightLogRepository, periods PeriodReader) *WeightLogService {
	return &WeightLogService{
		logs:    logs,
		periods: periods,
	}
}

// LogWeight validates and persists a measurement.
func (service *WeightLogService) LogWeight(userID uint, input WeightInput, now time.Time, location *time.Location) (models.WeightLog, error) {
	day, err := ValidateWeightInput(input, now, location)
	if err != nil {
		return models.WeightLog{}, err
	}

	entry := models.WeightLog{
		UserID:   userID,
		Date:     day,
		WeightKg: input.WeightKg,
		Notes:    input.Notes,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.WeightLog{}, ErrWeightLogCreateFailed
	}
	return entry, nil
}

// WeightHistory returns the trailing-days window of measurements, most
// recent first.
func (service *WeightLogService) WeightHistory(userID uint, days int, now time.Time, location *time.Location) ([]models.WeightLog, error) {
	today := DateAtLocation(now, location)
	rangeStart := today.AddDate(0, 0, -days)
	rangeEnd := today.AddDate(0, 0, 1)
	return service.logs.ListByUserRange(userID, rangeStart, rangeEnd)
}

func (service *WeightLogService) AllWeightHistory(userID uint) ([]models.WeightLog, error) {
	return service.logs.ListByUser(userID)
}

func (service *WeightLogService) LatestWeight(userID uint) (models.WeightLog, bool, error) {
	return service.logs.FindLatest(userID)
}

// WeightOnDate resolves the authoritative weight for an exact day; with
// duplicate entries the most recently created one wins.
func (service *WeightLogService) WeightOnDate(userID uint, day time.Time, location *time.Location) (float64, bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return 0, false, nil
	}
	return entry.WeightKg, true, nil
}

// WeightChangeOverWindow computes the trend over the trailing lookbackDays
// window. The false return means fewer than two samples, a normal
// "not enough data yet" state.
func (service *WeightLogService) WeightChangeOverWindow(userID uint, lookbackDays int, now time.Time, location *time.Location) (WeightTrend, bool, error) {
	history, err := service.WeightHistory(userID, lookbackDays, now, location)
	if err != nil {
		return WeightTrend{}, false, err
	}

	trend, ok := BuildWeightTrend(history, lookbackDays)
	return trend, ok, nil
}

// ProgressSummary aggregates the latest weight with weekly and monthly
// trends and the total number of measurements.
type ProgressSummary struct {
	HasData       bool         `json:"has_data"`
	CurrentWeight float64      `json:"current_weight,omitempty"`
	WeeklyChange  *WeightTrend `json:"weekly_change"`
	MonthlyChange *WeightTrend `json:"monthly_change"`
	TotalLogs     int64        `json:"total_logs"`
}

func (service *WeightLogService) BuildProgressSummary(userID uint, now time.Time, location *time.Location) (ProgressSummary, error) {
	latest, found, err := service.logs.FindLatest(userID)
	if err != nil {
		return ProgressSummary{}, err
	}
	if !found {
		return ProgressSummary{}, nil
	}

	summary := ProgressSummary{
		HasData:       true,
		CurrentWeight: latest.WeightKg,
	}

	if weekly, ok, err := service.WeightChangeOverWindow(userID, 7, now, location); err != nil {
		return ProgressSummary{}, err
	} else if ok {
		summary.WeeklyChange = &weekly
	}

	if monthly, ok, err := service.WeightChangeOverWindow(userID, 30, now, location); err != nil {
		return ProgressSummary{}, err
	} else if ok {
		summary.MonthlyChange = &monthly
	}

	total, err := service.logs.CountByUser(userID)
	if err != nil {
		return ProgressSummary{}, err
	}
	summary.TotalLogs = total

	return summary, nil
}

// TrendChartData is the ascending date/weight series used for plotting.
type TrendChartData struct {
	Dates   []string  `json:"dates"`
	Weights []float64 `json:"weights"`
	HasData bool      `json:"has_data"`
	Count   int       `json:"count"`
}

func (service *WeightLogService) BuildTrendChartData(userID uint, days int, now time.Time, location *time.Location) (TrendChartData, error) {
	history, err := service.WeightHistory(userID, days, now, location)
	if err != nil {
		return TrendChartData{}, err
	}

	chart := TrendChartData{
		Dates:   make([]string, 0, len(history)),
		Weights: make([]float64, 0, len(history)),
	}
	if len(history) == 0 {
		return chart, nil
	}

	// History arrives descending; plot chronologically.
	for i := len(history) - 1; i >= 0; i-- {
		chart.Dates = append(chart.Dates, history[i].Date.Format(dayFormat))
		chart.Weights = append(chart.Weights, history[i].WeightKg)
	}
	chart.HasData = true
	chart.Count = len(history)
	return chart, nil
}

// EnrichedHistory returns the decorated, descending-ordered history for
// presentation. Historical periods are always included when requested,
// regardless of their active or ongoing status.
func (service *WeightLogService) EnrichedHistory(userID uint, days int, includePeriods bool, now time.Time, location *time.Location) ([]EnrichedWeightLog, error) {
	history, err := service.WeightHistory(userID, days, now, location)
	if err != nil {
		return nil, ErrWeightLogLoadFailed
	}
	if len(history) == 0 {
		return []EnrichedWeightLog{}, nil
	}

	periods := make([]models.DietaryPeriod, 0)
	if includePeriods {
		periods, err = service.periods.ListByUser(userID)
		if err != nil {
			return nil, ErrWeightLogLoadFailed
		}
	}

	return EnrichWeightHistory(history, periods), nil
}

// UpdateWeightLog rewrites a measurement's weight and notes after
// revalidating the weight range. The measurement date is immutable.
func (service *WeightLogService) UpdateWeightLog(logID uint, weightKg float64, notes string) error {
	if err := ValidateWeightValue(weightKg); err != nil {
		return err
	}

	updated, err := service.logs.UpdateWeightAndNotes(logID, weightKg, notes)
	if err != nil {
		return ErrWeightLogUpdateFailed
	}
	if !updated {
		return ErrWeightLogNotFound
	}
	return nil
}

func (service *WeightLogService) DeleteWeightLog(logID uint) error {
	deleted, err := service.logs.Delete(logID)
	if err != nil {
		return ErrWeightLogDeleteFailed
	}
	if !deleted {
		return ErrWeightLogNotFound
	}
	return nil
}

func (service *WeightLogService) CountLogs(userID uint) (int64, error) {
	return service.logs.CountByUser(userID)
}
