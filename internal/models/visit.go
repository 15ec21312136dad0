package models

import "strings"

type VisitKind string

const (
	VisitKindPlanned     VisitKind = "planned"
	VisitKindSpecialTask VisitKind = "special-task"
)

// GeneralTimeKey groups visits and tasks that carry no clock time.
const GeneralTimeKey = "general"

// Visit is a recurring or one-time home-care visit. Exactly one of Date
// (one-time) and a non-empty Weekdays set (recurring) determines the
// recurrence kind; when Date is set, Weekdays and EndDate are ignored.
// EndDate, when present, bounds the last due date of a recurring visit
// inclusively. ListID is always re-derived from Time on write; callers must
// not rely on the value they pass in surviving a save.
type Visit struct {
	ID          string    `json:"id" yaml:"id"`
	PatientID   string    `json:"patient_id" yaml:"patient_id"`
	ListID      string    `json:"list_id" yaml:"list_id"`
	Time        string    `json:"time,omitempty" yaml:"time,omitempty"`         // HH:MM, empty for no time
	Weekdays    []Weekday `json:"weekdays,omitempty" yaml:"weekdays,omitempty"` // recurring visits
	Date        string    `json:"date,omitempty" yaml:"date,omitempty"`         // YYYY-MM-DD, one-time visits
	EndDate     string    `json:"end_date,omitempty" yaml:"end_date,omitempty"` // YYYY-MM-DD, recurring bound
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        VisitKind `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// OneTime reports whether the visit is a single dated occurrence.
func (v Visit) OneTime() bool {
	return v.Date != ""
}

// TimeKey returns the trimmed visit time, or GeneralTimeKey when no time is
// set.
func (v Visit) TimeKey() string {
	t := strings.TrimSpace(v.Time)
	if t == "" {
		return GeneralTimeKey
	}
	return t
}

// HasWeekday reports whether wd is in the visit's weekday set.
func (v Visit) HasWeekday(wd Weekday) bool {
	for _, d := range v.Weekdays {
		if d == wd {
			return true
		}
	}
	return false
}
