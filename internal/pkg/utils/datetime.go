package utils

import (
	"handicare-service/internal/pkg/exceptions"
	"time"
)

// Wire and key formats used across the schedule store. All formatting and
// parsing goes through this file so Snapshot ingestion, Ledger keys and the
// Redis documents can never disagree on timezone handling.
const (
	WireDateTimeLayout = "20060102150405"
	WireDateLayout     = "20060102"
	DateKeyLayout      = "2006-01-02"
	SlotLabelLayout    = "15:04"
)

func FormatWireDateTime(t time.Time) string {
	return t.Format(WireDateTimeLayout)
}

func ParseWireDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(WireDateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, exceptions.ErrScheduleWireFormat(err, s)
	}
	return t, nil
}

func FormatWireDate(t time.Time) string {
	return t.Format(WireDateLayout)
}

func ParseWireDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(WireDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, exceptions.ErrMatchingTargetDateInvalid(err, s)
	}
	return t, nil
}

func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

func ParseDateKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, exceptions.ErrScheduleDateKeyMalformed(err, s)
	}
	return t, nil
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
