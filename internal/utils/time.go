package utils

import (
	"fmt"
	"time"

	"github.com/honucare/rounds/internal/constants"
	"github.com/honucare/rounds/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// TodayInTimezone returns today's date string (YYYY-MM-DD) in the specified
// timezone. "Today" is always determined by the configured civil timezone,
// not the machine's local clock.
func TodayInTimezone(timezone string) (string, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc).Format(constants.DateFormat), nil
}

// Today returns today's date string in the default roster timezone, falling
// back to the local clock if the zone database is unavailable.
func Today() string {
	if d, err := TodayInTimezone(constants.DefaultTimezone); err == nil {
		return d
	}
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidDate reports whether dateStr is a well-formed YYYY-MM-DD date.
func ValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// WeekdayOf returns the weekday of a YYYY-MM-DD date string.
func WeekdayOf(dateStr string) (models.Weekday, error) {
	d, err := ParseDate(dateStr)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return models.WeekdayFromTime(d.Weekday()), nil
}

// NextDateWithWeekday returns the first date on or after fromDate that falls
// on the given weekday.
func NextDateWithWeekday(fromDate string, wd models.Weekday) (string, error) {
	d, err := ParseDate(fromDate)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", fromDate, err)
	}
	for i := 0; i < 7; i++ {
		if models.WeekdayFromTime(d.Weekday()) == wd {
			return d.Format(constants.DateFormat), nil
		}
		d = d.AddDate(0, 0, 1)
	}
	return "", fmt.Errorf("unknown weekday %q", wd)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of
// minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesOrNone is the lenient variant used on untrusted visit/task times:
// a blank or malformed time string yields ok=false and is treated as "no
// time set" by callers, never as an error.
func MinutesOrNone(timeStr string) (int, bool) {
	if timeStr == "" {
		return 0, false
	}
	mins, err := ParseTimeToMinutes(timeStr)
	if err != nil {
		return 0, false
	}
	return mins, true
}

// FormatMinutes renders minutes-since-midnight as HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AgeOn computes a patient's age in whole years on the given date. Returns
// ok=false when either date is malformed.
func AgeOn(birthDate, onDate string) (int, bool) {
	b, err := ParseDate(birthDate)
	if err != nil {
		return 0, false
	}
	d, err := ParseDate(onDate)
	if err != nil {
		return 0, false
	}
	years := d.Year() - b.Year()
	if d.Month() < b.Month() || (d.Month() == b.Month() && d.Day() < b.Day()) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}
