package domain

import (
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a strict ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError("date", "Date must be in ISO format YYYY-MM-DD")
	}
	return d, nil
}

// FormatDate renders a date in the wire format (YYYY-MM-DD).
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// ParseMealTime parses a time-of-day in HH:MM or HH:MM:SS form and
// normalizes it to HH:MM:SS.
func ParseMealTime(value string) (string, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", NewValidationError("meal_time", "meal_time must be in HH:MM or HH:MM:SS format")
}

// rangeDays maps the accepted stats range tokens to their day counts.
var rangeDays = map[string]int{
	"7d":  7,
	"14d": 14,
	"30d": 30,
}

// ResolveRange maps a stats range token to its day count. Only the
// literal tokens 7d, 14d and 30d are accepted.
func ResolveRange(token string) (int, error) {
	days, ok := rangeDays[token]
	if !ok {
		return 0, NewValidationError("range", "range must be one of 7d, 14d, 30d")
	}
	return days, nil
}
