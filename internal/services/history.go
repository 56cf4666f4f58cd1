package services

import "github.com/skoskinen/painovahti/internal/models"

// EnrichedWeightLog is a weight measurement decorated for presentation:
// its ISO week placement, a flag on the first row seen per week while
// walking newest-to-oldest, and the dietary periods covering its date.
type EnrichedWeightLog struct {
	models.WeightLog
	WeekInfo
	IsWeekStart   bool     `json:"is_week_start"`
	ActivePeriods []string `json:"active_periods"`
	PeriodMarkers []string `json:"period_markers"`
	HasPeriods    bool     `json:"has_periods"`
}

// EnrichWeightHistory walks a descending-ordered history and attaches week
// and period annotations to every entry. IsWeekStart marks the first entry
// encountered in each week during the descending walk, i.e. the newest log
// of that week, not the calendar Monday. Output order matches input order.
func EnrichWeightHistory(historyDesc []models.WeightLog, periods []models.DietaryPeriod) []EnrichedWeightLog {
	enriched := make([]EnrichedWeightLog, 0, len(historyDesc))

	currentWeek := -1
	for _, entry := range historyDesc {
		weekInfo := WeekInfoFor(entry.Date)
		isWeekStart := weekInfo.WeekNumber != currentWeek
		currentWeek = weekInfo.WeekNumber

		activePeriods, markers := PeriodsForDate(entry.Date, periods)

		enriched = append(enriched, EnrichedWeightLog{
			WeightLog:     entry,
			WeekInfo:      weekInfo,
			IsWeekStart:   isWeekStart,
			ActivePeriods: activePeriods,
			PeriodMarkers: markers,
			HasPeriods:    len(activePeriods) > 0,
		})
	}

	return enriched
}
