package services

import (
	"fmt"
	"time"
)

// WeekInfo places a calendar date inside its ISO-8601 week.
type WeekInfo struct {
	WeekNumber int       `json:"week_number"`
	WeekStart  time.Time `json:"week_start_date"`
	Year       int       `json:"year"`
	Label      string    `json:"week_label"`
}

// WeekInfoFor returns the ISO week number and year for a date along with the
// Monday that starts the week. Total for any valid date.
func WeekInfoFor(day time.Time) WeekInfo {
	year, week := day.ISOWeek()

	// Monday is weekday 0 here; time.Weekday has Sunday = 0.
	daysSinceMonday := (int(day.Weekday()) + 6) % 7
	weekStart := day.AddDate(0, 0, -daysSinceMonday)

	return WeekInfo{
		WeekNumber: week,
		WeekStart:  weekStart,
		Year:       year,
		Label:      fmt.Sprintf("Week %d, %d", week, year),
	}
}
