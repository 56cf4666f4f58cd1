package services

import "time"

const dayFormat = "2006-01-02"

// DateAtLocation truncates a timestamp to midnight of its calendar day in
// the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [midnight, next midnight) range of the day
// containing value.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// ParseDay parses a YYYY-MM-DD string into a midnight date at the location.
func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(dayFormat, raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func sameDay(a, b time.Time) bool {
	return a.Format(dayFormat) == b.Format(dayFormat)
}

// dayCount counts calendar days between two dates. Both ends are
// renormalized to UTC midnights first so a DST transition between them
// cannot shave off a day.
func dayCount(from, to time.Time) int {
	fromYear, fromMonth, fromDay := from.Date()
	toYear, toMonth, toDay := to.Date()
	fromMidnight := time.Date(fromYear, fromMonth, fromDay, 0, 0, 0, 0, time.UTC)
	toMidnight := time.Date(toYear, toMonth, toDay, 0, 0, 0, 0, time.UTC)
	return int(toMidnight.Sub(fromMidnight).Hours() / 24)
}
