package dateutil

import "time"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// WeekdayIndex returns the Monday-based weekday index (0=Monday ... 6=Sunday)
// used for per-weekday configuration lookups.
func WeekdayIndex(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday - 1
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	var err error
	for _, format := range formats {
		var t time.Time
		if t, err = time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
