package schedule

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date format")

// slotLabels are the consultation hours offered on every booking form.
var slotLabels = []string{
	"09:00 - 10:00 AM",
	"10:00 - 11:00 AM",
	"11:00 - 12:00 PM",
	"02:00 - 03:00 PM",
	"03:00 - 04:00 PM",
	"04:00 - 05:00 PM",
	"05:00 - 06:00 PM",
}

// Slots returns a copy of the slot labels in display order.
func Slots() []string {
	return append([]string(nil), slotLabels...)
}

func IsSlotLabel(label string) bool {
	for _, s := range slotLabels {
		if s == label {
			return true
		}
	}
	return false
}

func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, dateStr, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// IsDatePast reports whether dateStr is before today in loc. Today is not past.
func IsDatePast(dateStr string, loc *time.Location, now time.Time) (bool, error) {
	date, err := ParseDate(dateStr, loc)
	if err != nil {
		return false, err
	}
	local := now.In(loc)
	startToday := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return date.Before(startToday), nil
}

// Location loads name, falling back to UTC when the zone database lacks it.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
