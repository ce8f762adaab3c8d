package models

import (
	"time"
	"unicode/utf8"
)

// Flash message types
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// FlashMessage is a one-shot message carried to the next page render
type FlashMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// DateRange represents a half-open time window [Start, End)
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DayOf returns the calendar day containing now, in now's location
func DayOf(now time.Time) DateRange {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return DateRange{Start: start, End: start.AddDate(0, 0, 1)}
}

// LastDays returns the rolling window ending at now and reaching back the
// given number of 24-hour days
func LastDays(now time.Time, days int) DateRange {
	return DateRange{Start: now.Add(-time.Duration(days) * 24 * time.Hour), End: now}
}

// CalendarDays returns the whole local days from days before today's date up
// to the end of today, so the oldest date is never cut short
func CalendarDays(now time.Time, days int) DateRange {
	today := DayOf(now)
	return DateRange{Start: today.Start.AddDate(0, 0, -days), End: today.End}
}

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "…"
}
