// Package routing maps a visit's clock time to the list that should carry
// it: times after the evening cutoff route to a list's evening sibling.
package routing

import (
	"strings"

	"github.com/honucare/rounds/internal/utils"
)

// EveningSuffix is the reserved suffix that derives an evening list id from
// its base list id. The transform is invertible and applied at most once.
const EveningSuffix = "-evening"

// EveningCutoffMinutes is the single canonical day/evening boundary (15:00).
// A time routes to the evening sibling iff its minutes-since-midnight are
// strictly greater than this value. The same constant governs list
// derivation on save, special-task recommendations and evening color
// rendering.
const EveningCutoffMinutes = 15 * 60

// IsEveningID reports whether id names an evening list.
func IsEveningID(id string) bool {
	return strings.HasSuffix(id, EveningSuffix)
}

// EveningListID returns the evening sibling id for a base list id. Applying
// it to an id that is already an evening id returns the id unchanged.
func EveningListID(baseID string) string {
	if IsEveningID(baseID) {
		return baseID
	}
	return baseID + EveningSuffix
}

// BaseListID strips the evening suffix exactly once, returning the base
// (day) list id for either member of a sibling pair.
func BaseListID(id string) string {
	return strings.TrimSuffix(id, EveningSuffix)
}

// IsEveningTime reports whether a clock time falls after the evening cutoff.
// A blank or malformed time never routes to the evening.
func IsEveningTime(timeStr string) bool {
	mins, ok := utils.MinutesOrNone(strings.TrimSpace(timeStr))
	if !ok {
		return false
	}
	return mins > EveningCutoffMinutes
}

// RouteList maps a base list id and a clock time to the list that should
// carry the visit: the evening sibling for times after the cutoff, the base
// list otherwise. The base id is normalized first, so passing an evening id
// with a daytime time routes back to the day list.
func RouteList(baseListID, timeStr string) string {
	base := BaseListID(baseListID)
	if IsEveningTime(timeStr) {
		return EveningListID(base)
	}
	return base
}
