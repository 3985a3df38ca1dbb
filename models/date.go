package models

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is an ISO calendar date with no time component. The string form
// ("2006-01-02") orders lexicographically the same as chronologically,
// which is what snapshot scans and rollups rely on.
type Date string

func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func Today() Date {
	return NewDate(time.Now())
}

// ParseDate validates and normalizes an ISO date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

func (d Date) String() string {
	return string(d)
}

// AddDays returns the date shifted by the given number of days.
func (d Date) AddDays(days int) Date {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return d
	}
	return NewDate(t.AddDate(0, 0, days))
}
