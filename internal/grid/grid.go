// Package grid implements the weekday-by-time editor for a patient's
// planned visits. The grid is a working copy: cells are cut, pasted and
// merged freely in memory, and nothing touches the registry until Commit
// replaces the patient's planned visits wholesale.
package grid

import (
	"sort"
	"strings"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/routing"
	"github.com/honucare/rounds/internal/utils"
)

// Row is one grid row: a (list, time) slot with the weekdays it occurs on.
// An empty Time means an untimed slot.
type Row struct {
	ListID      string
	Time        string
	Description string
	Weekdays    map[models.Weekday]bool
}

// Key identifies the row's (list, time) slot. Rows with equal keys merge
// during normalization.
func (r Row) Key() string {
	t := r.Time
	if t == "" {
		t = "__untimed__"
	}
	return r.ListID + "::" + t
}

func (r Row) clone() Row {
	wd := make(map[models.Weekday]bool, len(r.Weekdays))
	for k, v := range r.Weekdays {
		if v {
			wd[k] = true
		}
	}
	r.Weekdays = wd
	return r
}

// Normalize merges rows sharing a (list, time) slot, unioning their weekday
// sets and keeping the first non-blank description, drops rows with no
// weekdays left, and sorts by time ascending with untimed rows last, ties
// broken by list id. Normalizing twice is a no-op.
func Normalize(rows []Row) []Row {
	merged := make(map[string]*Row)
	var order []string
	for _, r := range rows {
		r = r.clone()
		key := r.Key()
		cur, ok := merged[key]
		if !ok {
			merged[key] = &r
			order = append(order, key)
			continue
		}
		for wd := range r.Weekdays {
			cur.Weekdays[wd] = true
		}
		if strings.TrimSpace(cur.Description) == "" {
			cur.Description = r.Description
		}
	}
	out := make([]Row, 0, len(order))
	for _, key := range order {
		r := merged[key]
		if len(r.Weekdays) == 0 {
			continue
		}
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		am, aok := utils.MinutesOrNone(a.Time)
		bm, bok := utils.MinutesOrNone(b.Time)
		if aok != bok {
			return aok
		}
		if aok && am != bm {
			return am < bm
		}
		return a.ListID < b.ListID
	})
	return out
}

// FromVisits folds a patient's planned visits into grid rows. Special-task
// visits are excluded; they are not editable through the grid. Row list ids
// collapse to the base so the grid shows routes, not the derived evening
// split.
func FromVisits(visits []models.Visit) []Row {
	var rows []Row
	for _, v := range visits {
		if v.Kind == models.VisitKindSpecialTask || v.OneTime() {
			continue
		}
		wd := make(map[models.Weekday]bool, len(v.Weekdays))
		for _, d := range v.Weekdays {
			wd[d] = true
		}
		rows = append(rows, Row{
			ListID:      routing.BaseListID(v.ListID),
			Time:        v.Time,
			Description: v.Description,
			Weekdays:    wd,
		})
	}
	return Normalize(rows)
}
