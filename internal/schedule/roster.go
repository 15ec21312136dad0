package schedule

import (
	"fmt"
	"sort"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/registry"
	"github.com/honucare/rounds/internal/routing"
	"github.com/honucare/rounds/internal/utils"
)

// Resolver combines the entity registry with the override state to answer
// "who is on this list today".
type Resolver struct {
	Reg *registry.Registry
	Ovr *Overrides
}

// RosterRow is one visit card on a resolved roster.
type RosterRow struct {
	Visit           models.Visit
	Patient         models.Patient
	TimeKey         string
	Tasks           []models.Task
	Completed       bool
	DurationMinutes int

	// Age is the patient's age on the roster date; AgeKnown is false when
	// the birth date is missing or unparseable.
	Age      int
	AgeKnown bool
}

// EffectiveListID returns the list a visit renders on for a date: the move
// override when one is set, otherwise the visit's own list.
func (s *Resolver) EffectiveListID(v models.Visit, date string) string {
	if target, ok := s.Ovr.MoveFor(date, v.ID); ok {
		return target
	}
	return v.ListID
}

// RosterFor resolves the visit cards for one list on one date. Pauses win
// over moves, moves win over the derived list, and visits whose patient no
// longer exists are dropped. Rows sort by time with untimed visits last,
// ties broken by patient name then visit id.
func (s *Resolver) RosterFor(listID, date string) []RosterRow {
	var rows []RosterRow
	for _, v := range s.Reg.Visits {
		if s.Ovr.PausedOn(v.PatientID, date) {
			continue
		}
		if s.EffectiveListID(v, date) != listID {
			continue
		}
		if !IsDue(v, date) {
			continue
		}
		patient, ok := s.Reg.PatientByID(v.PatientID)
		if !ok {
			continue
		}
		rows = append(rows, s.buildRow(v, patient, date))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if (a.TimeKey == models.GeneralTimeKey) != (b.TimeKey == models.GeneralTimeKey) {
			return b.TimeKey == models.GeneralTimeKey
		}
		if a.TimeKey != b.TimeKey {
			return a.TimeKey < b.TimeKey
		}
		if a.Patient.Name != b.Patient.Name {
			return a.Patient.Name < b.Patient.Name
		}
		return a.Visit.ID < b.Visit.ID
	})
	return rows
}

func (s *Resolver) buildRow(v models.Visit, patient models.Patient, date string) RosterRow {
	tasks := s.Reg.TasksForVisit(v)
	row := RosterRow{
		Visit:   v,
		Patient: patient,
		TimeKey: v.TimeKey(),
		Tasks:   tasks,
	}
	if len(tasks) > 0 {
		done := true
		for _, t := range tasks {
			row.DurationMinutes += t.DurationMinutes
			if !t.Completed() {
				done = false
			}
		}
		row.Completed = done
	} else {
		row.Completed = s.Ovr.CompletionMark(date, v.ID)
	}
	row.Age, row.AgeKnown = utils.AgeOn(patient.BirthDate, date)
	return row
}

// ToggleCompletion flips a visit's done state for one date. With linked
// tasks the toggle is bulk: all pending unless every task was already
// completed, in which case all reset to pending. Without tasks the per-date
// mark flips instead; the two mechanisms never mix for one visit.
func (s *Resolver) ToggleCompletion(date, visitID string) error {
	v, ok := s.Reg.VisitByID(visitID)
	if !ok {
		return fmt.Errorf("visit %q: %w", visitID, registry.ErrUnknownVisit)
	}
	tasks := s.Reg.TasksForVisit(v)
	if len(tasks) == 0 {
		s.Ovr.SetCompletionMark(date, visitID, !s.Ovr.CompletionMark(date, visitID))
		return nil
	}
	allDone := true
	for _, t := range tasks {
		if !t.Completed() {
			allDone = false
			break
		}
	}
	next := models.TaskStatusCompleted
	if allDone {
		next = models.TaskStatusPending
	}
	for _, t := range tasks {
		if err := s.Reg.SetTaskStatus(t.ID, next); err != nil {
			return err
		}
	}
	return nil
}

// MoveVisit records a one-date move to another list pair. The target base
// must exist; the final list is re-routed from the visit's time, so moving
// an evening visit to another route keeps it on that route's evening list.
func (s *Resolver) MoveVisit(date, visitID, targetListID string) error {
	v, ok := s.Reg.VisitByID(visitID)
	if !ok {
		return fmt.Errorf("visit %q: %w", visitID, registry.ErrUnknownVisit)
	}
	baseID := routing.BaseListID(targetListID)
	if _, ok := s.Reg.ListByID(baseID); !ok {
		return fmt.Errorf("list %q: %w", targetListID, registry.ErrUnknownList)
	}
	s.Ovr.SetMove(date, visitID, routing.RouteList(baseID, v.Time))
	return nil
}
