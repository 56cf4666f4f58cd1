package services

import (
	"time"

	"github.com/skoskinen/painovahti/internal/models"
)

// WeightChange captures the effectiveness of a period from its boundary
// weight samples.
type WeightChange struct {
	StartWeight   float64 `json:"start_weight"`
	EndWeight     float64 `json:"end_weight"`
	Change        float64 `json:"change"`
	ChangePerWeek float64 `json:"change_per_week"`
}

// PeriodSummary decorates a period with its duration and, when both
// boundary weights resolved, the attributable weight change.
type PeriodSummary struct {
	Period       models.DietaryPeriod `json:"period"`
	DurationDays int                  `json:"duration_days"`
	IsOngoing    bool                 `json:"is_ongoing"`
	WeightChange *WeightChange        `json:"weight_change"`
}

// EffectiveEndDate is the period's end date, or today for an ongoing period.
func EffectiveEndDate(period models.DietaryPeriod, today time.Time) (time.Time, bool) {
	if period.EndDate != nil {
		return *period.EndDate, false
	}
	return today, true
}

// BuildPeriodSummary computes duration and effectiveness for a period.
// startWeight and endWeight are the exact-date samples at the period
// boundaries; when either is nil the summary carries no weight change,
// which is an expected "not enough data" state rather than an error.
func BuildPeriodSummary(period models.DietaryPeriod, startWeight *float64, endWeight *float64, today time.Time) PeriodSummary {
	effectiveEnd, isOngoing := EffectiveEndDate(period, today)
	durationDays := dayCount(period.StartDate, effectiveEnd) + 1

	summary := PeriodSummary{
		Period:       period,
		DurationDays: durationDays,
		IsOngoing:    isOngoing,
	}

	if startWeight == nil || endWeight == nil {
		return summary
	}

	change := *endWeight - *startWeight
	changePerWeek := 0.0
	if durationDays > 0 {
		changePerWeek = change / float64(durationDays) * 7
	}

	summary.WeightChange = &WeightChange{
		StartWeight:   *startWeight,
		EndWeight:     *endWeight,
		Change:        change,
		ChangePerWeek: changePerWeek,
	}
	return summary
}
