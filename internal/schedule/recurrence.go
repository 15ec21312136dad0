// Package schedule resolves which visits are due on a date, applies
// date-scoped overrides (moves, pauses, completion marks) and assembles
// the per-list roster.
package schedule

import (
	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/utils"
)

// IsDue reports whether a visit occurs on the given date. One-time visits
// match their exact date; recurring visits match when the date's weekday is
// in the visit's set and the date is not past the optional end date. Dates
// outside the calendar never match.
func IsDue(v models.Visit, date string) bool {
	if !utils.ValidDate(date) {
		return false
	}
	if v.OneTime() {
		return v.Date == date
	}
	wd, err := utils.WeekdayOf(date)
	if err != nil {
		return false
	}
	if !v.HasWeekday(wd) {
		return false
	}
	// ISO dates compare lexically.
	if v.EndDate != "" && date > v.EndDate {
		return false
	}
	return true
}
