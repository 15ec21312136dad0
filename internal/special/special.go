// Package special creates one-off and periodic extra tasks as paired
// special visits, and recommends a target list from the patient's existing
// schedule.
package special

import (
	"errors"
	"fmt"
	"strings"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/registry"
	"github.com/honucare/rounds/internal/routing"
	"github.com/honucare/rounds/internal/utils"
)

var (
	ErrTitleRequired = errors.New("task title is required")
	ErrDateRequired  = errors.New("one-time task needs a date")
	ErrTimeRequired  = errors.New("task time is required")
)

// RecommendListID suggests the list for a new task at the given time: the
// list of the patient's planned visit closest in clock time, upgraded to
// the evening sibling when the task time falls past the evening cutoff and
// that sibling is active. Ties resolve to the lower list id, then the lower
// visit id. Returns false when the patient has no timed visit on an active
// list to anchor on.
func RecommendListID(reg *registry.Registry, patientID, timeStr string) (string, bool) {
	target, ok := utils.MinutesOrNone(timeStr)
	if !ok {
		return "", false
	}
	active := make(map[string]bool)
	for _, l := range reg.Lists {
		if l.Active {
			active[l.ID] = true
		}
	}

	best := ""
	bestDiff := 0
	bestVisit := ""
	for _, v := range reg.VisitsForPatient(patientID, false) {
		if !active[v.ListID] {
			continue
		}
		mins, ok := utils.MinutesOrNone(v.Time)
		if !ok {
			continue
		}
		diff := mins - target
		if diff < 0 {
			diff = -diff
		}
		if best == "" ||
			diff < bestDiff ||
			(diff == bestDiff && (v.ListID < best || (v.ListID == best && v.ID < bestVisit))) {
			best, bestDiff, bestVisit = v.ListID, diff, v.ID
		}
	}
	if best == "" {
		return "", false
	}
	if routing.IsEveningTime(timeStr) {
		evening := routing.EveningListID(routing.BaseListID(best))
		if active[evening] {
			return evening, true
		}
	}
	// The anchor may sit on an evening sibling. AddVisit re-routes by time
	// on save, so pre-cutoff times collapse to the base id here.
	return routing.BaseListID(best), true
}

// Params describes a new special task. Leave Date empty and set Weekdays
// for a periodic task; a periodic task with no weekdays defaults to Monday.
type Params struct {
	PatientID       string
	ListID          string
	Time            string
	Title           string
	Description     string
	Date            string
	Weekdays        []models.Weekday
	EndDate         string
	DurationMinutes int
	OneTime         bool
}

// Create stores the special visit and its linked task. Both land on the
// time-routed side of the chosen list pair.
func Create(reg *registry.Registry, p Params) (models.Visit, models.Task, error) {
	if strings.TrimSpace(p.Title) == "" {
		return models.Visit{}, models.Task{}, ErrTitleRequired
	}
	if strings.TrimSpace(p.Time) == "" {
		return models.Visit{}, models.Task{}, ErrTimeRequired
	}
	if p.OneTime {
		if !utils.ValidDate(p.Date) {
			return models.Visit{}, models.Task{}, fmt.Errorf("%w (got %q)", ErrDateRequired, p.Date)
		}
	} else if len(p.Weekdays) == 0 {
		p.Weekdays = []models.Weekday{models.Monday}
	}

	visit := models.Visit{
		PatientID:   p.PatientID,
		ListID:      p.ListID,
		Time:        p.Time,
		Description: p.Title,
		Kind:        models.VisitKindSpecialTask,
	}
	if p.OneTime {
		visit.Date = p.Date
	} else {
		visit.Weekdays = p.Weekdays
		visit.EndDate = p.EndDate
	}
	visit, err := reg.AddVisit(visit)
	if err != nil {
		return models.Visit{}, models.Task{}, err
	}

	task, err := reg.AddTask(models.Task{
		PatientID:       p.PatientID,
		ListID:          p.ListID,
		VisitID:         visit.ID,
		VisitTime:       p.Time,
		Title:           p.Title,
		Description:     p.Description,
		Status:          models.TaskStatusPending,
		DurationMinutes: p.DurationMinutes,
	})
	if err != nil {
		// Keep the pair atomic.
		_ = reg.DeleteVisit(visit.ID)
		return models.Visit{}, models.Task{}, err
	}
	return visit, task, nil
}
