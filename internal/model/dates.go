package model

import "time"

// DateFormat is the calendar-day key format used everywhere a date is
// stored or compared.
const DateFormat = "2006-01-02"

// Day formats t as a YYYY-MM-DD day key in local time.
func Day(t time.Time) string {
	return t.Local().Format(DateFormat)
}

// Millis converts t to Unix milliseconds.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
