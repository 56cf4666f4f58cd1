package services

import (
	"fmt"
	"time"

	"github.com/skoskinen/painovahti/internal/models"
)

const (
	periodStartMarkerPrefix = "▶ START: "
	periodEndMarkerPrefix   = "⏹ END: "
)

// PeriodsForDate reports which periods contain the given day and which of
// them start or end exactly on it. A period contains a day when
// start_date <= day and the period is open-ended or end_date >= day.
// Both result slices preserve the input period order; a single-day period
// emits its start and end marker together.
func PeriodsForDate(day time.Time, periods []models.DietaryPeriod) ([]string, []string) {
	activeNames := make([]string, 0)
	markers := make([]string, 0)

	for _, period := range periods {
		if !periodContainsDay(period, day) {
			continue
		}

		activeNames = append(activeNames, period.Name)

		if sameDay(period.StartDate, day) {
			markers = append(markers, fmt.Sprintf("%s%s", periodStartMarkerPrefix, period.Name))
		}
		if period.EndDate != nil && sameDay(*period.EndDate, day) {
			markers = append(markers, fmt.Sprintf("%s%s", periodEndMarkerPrefix, period.Name))
		}
	}

	return activeNames, markers
}

func periodContainsDay(period models.DietaryPeriod, day time.Time) bool {
	if period.StartDate.After(day) && !sameDay(period.StartDate, day) {
		return false
	}
	if period.EndDate == nil {
		return true
	}
	return !period.EndDate.Before(day) || sameDay(*period.EndDate, day)
}
