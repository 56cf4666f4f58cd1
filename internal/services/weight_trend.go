package services

import (
	"time"

	"github.com/skoskinen/painovahti/internal/models"
)

const (
	TrendLosing  = "losing"
	TrendGaining = "gaining"
	TrendStable  = "stable"
)

// WeightTrend describes the weight delta over a look-back window.
type WeightTrend struct {
	CurrentWeight    float64   `json:"current_weight"`
	CurrentDate      time.Time `json:"current_date"`
	StartWeight      float64   `json:"start_weight"`
	StartDate        time.Time `json:"start_date"`
	WeightChange     float64   `json:"weight_change"`
	ChangePercentage float64   `json:"change_percentage"`
	DaysElapsed      int       `json:"days_elapsed"`
	Trend            string    `json:"trend"`
}

// BuildWeightTrend computes the change between the newest and oldest sample
// of a history already restricted to the look-back window and ordered
// descending by date. The start point is the oldest retained sample, not
// necessarily one taken exactly lookbackDays ago. Returns false when fewer
// than two samples exist.
func BuildWeightTrend(historyDesc []models.WeightLog, lookbackDays int) (WeightTrend, bool) {
	if len(historyDesc) < 2 {
		return WeightTrend{}, false
	}

	newest := historyDesc[0]
	oldest := historyDesc[len(historyDesc)-1]

	change := newest.WeightKg - oldest.WeightKg
	changePercentage := 0.0
	if oldest.WeightKg > 0 {
		changePercentage = change / oldest.WeightKg * 100
	}

	trend := TrendStable
	switch {
	case change < 0:
		trend = TrendLosing
	case change > 0:
		trend = TrendGaining
	}

	return WeightTrend{
		CurrentWeight:    newest.WeightKg,
		CurrentDate:      newest.Date,
		StartWeight:      oldest.WeightKg,
		StartDate:        oldest.Date,
		WeightChange:     change,
		ChangePercentage: changePercentage,
		DaysElapsed:      lookbackDays,
		Trend:            trend,
	}, true
}
