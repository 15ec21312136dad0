package grid

import (
	"fmt"
	"sort"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/registry"
)

// Clip is the clipboard payload: a row's time slot and description. List
// membership deliberately does not travel with it; the paste destination
// decides the list.
type Clip struct {
	Time        string
	Description string
}

// Editor is a per-patient grid session. Mutations operate on the in-memory
// rows only until Commit.
type Editor struct {
	PatientID     string
	DefaultListID string
	Rows          []Row
	clipboard     *Clip
}

// NewEditor loads a patient's planned visits into a fresh grid session.
// defaultListID seeds rows pasted outside any existing slot.
func NewEditor(reg *registry.Registry, patientID, defaultListID string) *Editor {
	return &Editor{
		PatientID:     patientID,
		DefaultListID: defaultListID,
		Rows:          FromVisits(reg.VisitsForPatient(patientID, false)),
	}
}

// SetCell places a visit cell on (listID, time) for one weekday, cutting it
// from its previous slot when fromKey names an existing row. Landing on an
// occupied slot joins that row, and the edited description wins over the
// row's old one.
func (e *Editor) SetCell(fromKey string, weekday models.Weekday, listID, time, description string) {
	if fromKey != "" {
		for i := range e.Rows {
			if e.Rows[i].Key() == fromKey {
				delete(e.Rows[i].Weekdays, weekday)
				break
			}
		}
	}
	target := Row{ListID: listID, Time: time}.Key()
	for i := range e.Rows {
		if e.Rows[i].Key() != target {
			continue
		}
		e.Rows[i].Weekdays[weekday] = true
		e.Rows[i].Description = description
		e.Rows = Normalize(e.Rows)
		return
	}
	e.Rows = append(e.Rows, Row{
		ListID:      listID,
		Time:        time,
		Description: description,
		Weekdays:    map[models.Weekday]bool{weekday: true},
	})
	e.Rows = Normalize(e.Rows)
}

// RemoveCell clears one weekday from a row. The row disappears once its
// last weekday is removed.
func (e *Editor) RemoveCell(key string, weekday models.Weekday) {
	for i := range e.Rows {
		if e.Rows[i].Key() == key {
			delete(e.Rows[i].Weekdays, weekday)
			break
		}
	}
	e.Rows = Normalize(e.Rows)
}

// Copy captures a row's time and description onto the clipboard.
func (e *Editor) Copy(key string) bool {
	for _, r := range e.Rows {
		if r.Key() == key {
			e.clipboard = &Clip{Time: r.Time, Description: r.Description}
			return true
		}
	}
	return false
}

// Paste drops the clipboard onto a weekday. With a destination row key the
// cell adopts that row's list and the weekday moves off the destination row
// to the clipboard's time slot; pasted into the open area it lands on the
// editor's default list at the clipboard's time.
func (e *Editor) Paste(destKey string, weekday models.Weekday) bool {
	if e.clipboard == nil {
		return false
	}
	listID := e.DefaultListID
	if destKey != "" {
		for _, r := range e.Rows {
			if r.Key() == destKey {
				listID = r.ListID
				break
			}
		}
	}
	e.SetCell(destKey, weekday, listID, e.clipboard.Time, e.clipboard.Description)
	return true
}

// Commit validates every row and replaces the patient's planned visits in
// one transactional swap. A failing row aborts the whole commit.
func (e *Editor) Commit(reg *registry.Registry) error {
	e.Rows = Normalize(e.Rows)
	next := make([]models.Visit, 0, len(e.Rows))
	for _, r := range e.Rows {
		if _, ok := reg.ListByID(r.ListID); !ok {
			return fmt.Errorf("grid row targets list %q: %w", r.ListID, registry.ErrUnknownList)
		}
		next = append(next, models.Visit{
			PatientID:   e.PatientID,
			ListID:      r.ListID,
			Time:        r.Time,
			Weekdays:    sortedWeekdays(r.Weekdays),
			Description: r.Description,
			Kind:        models.VisitKindPlanned,
		})
	}
	return reg.ReplaceVisitsForPatient(e.PatientID, next)
}

func sortedWeekdays(set map[models.Weekday]bool) []models.Weekday {
	out := make([]models.Weekday, 0, len(set))
	for _, wd := range models.WeekdayOrder {
		if set[wd] {
			out = append(out, wd)
		}
	}
	// Unknown values sort after the calendar week.
	var rest []models.Weekday
	for wd := range set {
		if !wd.Valid() {
			rest = append(rest, wd)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}
