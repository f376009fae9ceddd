package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	// MonthKeyLayout is the time layout of a month key (YYYY-MM)
	MonthKeyLayout = "2006-01"
	// DateLayout is the time layout of an expense date (YYYY-MM-DD)
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidMonthKey = errors.New("month must be in YYYY-MM format with month 01-12")
	ErrInvalidDate     = errors.New("date must be a real calendar date in YYYY-MM-DD format")
)

var (
	monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsValidMonthKey reports whether s is a strict YYYY-MM month key
func IsValidMonthKey(s string) bool {
	_, err := ParseMonthKey(s)
	return err == nil
}

// ParseMonthKey parses a YYYY-MM key into the first day of that month (UTC)
func ParseMonthKey(s string) (time.Time, error) {
	if !monthKeyPattern.MatchString(s) {
		return time.Time{}, ErrInvalidMonthKey
	}

	t, err := time.Parse(MonthKeyLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidMonthKey
	}

	return t, nil
}

// IsValidDate reports whether s is a strict YYYY-MM-DD calendar date
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// MonthKeyFromDate truncates a YYYY-MM-DD date to its month key.
// The date's own calendar is used; no timezone conversion happens here.
func MonthKeyFromDate(date string) (string, error) {
	if !IsValidDate(date) {
		return "", ErrInvalidDate
	}
	return date[:7], nil
}

// MonthKeyOf formats t as a month key in t's own location
func MonthKeyOf(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// DaysInMonth returns the number of calendar days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthLabel renders a month key as 2025年12月
func MonthLabel(monthKey string) string {
	t, err := ParseMonthKey(monthKey)
	if err != nil {
		return monthKey
	}
	return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
}
