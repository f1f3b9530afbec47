package model

import (
	"fmt"
	"time"
)

const (
	// DateKeyLayout is the canonical form used as the events mapping key.
	DateKeyLayout = "2006-01-02"
	// FullDateLayout matches the display format the event detail view shows.
	FullDateLayout = "Monday, January 2, 2006"
)

// DateKey formats a date as the canonical yyyy-MM-dd key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a canonical date key into a midnight UTC time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateRange, key)
	}
	return t, nil
}

// FullDate renders the human-readable date for a date key.
func FullDate(key string) (string, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}
	return t.Format(FullDateLayout), nil
}

// StartOfWeek returns the Monday of the week containing t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// SameWeek reports whether both dates fall into the same Monday-based week.
func SameWeek(a, b time.Time) bool {
	return StartOfWeek(a).Equal(StartOfWeek(b))
}

// RelativeLabel renders a date relative to now, e.g. "Today" or "In 3 days".
func RelativeLabel(date, now time.Time) string {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(day.Sub(today).Hours() / 24)

	switch {
	case diff == 0:
		return "Today"
	case diff == -1:
		return "Yesterday"
	case diff == 1:
		return "Tomorrow"
	case diff < 0:
		return fmt.Sprintf("%d days ago", -diff)
	default:
		return fmt.Sprintf("In %d days", diff)
	}
}
