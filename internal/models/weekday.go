package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a civil weekday in the fixed Mon..Sun order used throughout the
// planning grid and roster.
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

// WeekdayOrder fixes the display and iteration order (Mon first).
var WeekdayOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayFromTime converts a time.Weekday (Sunday-based) to a Weekday.
func WeekdayFromTime(wd time.Weekday) Weekday {
	switch wd {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ParseWeekday accepts short and long English weekday names, case-insensitive.
func ParseWeekday(s string) (Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mon", "monday":
		return Monday, nil
	case "tue", "tuesday":
		return Tuesday, nil
	case "wed", "wednesday":
		return Wednesday, nil
	case "thu", "thursday":
		return Thursday, nil
	case "fri", "friday":
		return Friday, nil
	case "sat", "saturday":
		return Saturday, nil
	case "sun", "sunday":
		return Sunday, nil
	default:
		return "", fmt.Errorf("invalid weekday: %s", s)
	}
}

// Valid reports whether w is one of the seven known weekdays.
func (w Weekday) Valid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// Label returns the capitalized three-letter form (e.g. "Mon").
func (w Weekday) Label() string {
	if len(w) < 3 {
		return string(w)
	}
	return strings.ToUpper(string(w[0])) + string(w[1:3])
}
