package model

import (
	"fmt"
	"time"
)

// Timestamp layouts accepted throughout the toolkit. Schedule endpoints are
// either date-only or date+minute; record bookkeeping stamps carry seconds.
const (
	DateLayout   = "2006-01-02"
	MinuteLayout = "2006-01-02 15:04"
	SecondLayout = "2006-01-02 15:04:05"
)

// IsDateOnly reports whether a stamp string uses the date-only form.
func IsDateOnly(s string) bool { return len(s) == len(DateLayout) }

// ParseStamp parses a timestamp in either accepted form.
func ParseStamp(s string) (time.Time, error) {
	layout := MinuteLayout
	if IsDateOnly(s) {
		layout = DateLayout
	}
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
	}
	return t, nil
}

// FormatStamp renders t in the same granularity as the original string form.
func FormatStamp(t time.Time, dateOnly bool) string {
	if dateOnly {
		return t.Format(DateLayout)
	}
	return t.Format(MinuteLayout)
}

// DatePortion returns the date part of a stamp string.
func DatePortion(s string) string {
	if len(s) < len(DateLayout) {
		return s
	}
	return s[:len(DateLayout)]
}
