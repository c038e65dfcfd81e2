package domain

import (
	"fmt"
	"time"
)

// DateLayout is the fixed-width calendar date format used for scheduled dates.
// Because every value has the same width, string comparison orders dates correctly.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string, rejecting impossible dates like
// 2024-02-30 and years outside 0001-9999.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Year() < 1 {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return FormatDate(now.In(loc))
}

// AddDays shifts a YYYY-MM-DD date by n days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// Weekday returns the English weekday name of a YYYY-MM-DD date.
func Weekday(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}
