// Package registry owns the in-memory entity state: visit lists with their
// derived evening siblings, patients, employees, visits and tasks. All
// mutation entry points re-normalize derived fields (evening mirroring,
// time-based list routing) instead of trusting caller input.
package registry

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/routing"
)

// Registry holds all entities for a session.
//
// Concurrency note:
//   - Registry is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple rounds processes that share the same data path at the
//     same time is not supported and may lead to data loss.
type Registry struct {
	Lists     []models.VisitList
	Patients  []models.Patient
	Employees []models.Employee
	Visits    []models.Visit
	Tasks     []models.Task
}

func New() *Registry {
	return &Registry{}
}

func (r *Registry) ListByID(id string) (models.VisitList, bool) {
	for _, l := range r.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return models.VisitList{}, false
}

func (r *Registry) PatientByID(id string) (models.Patient, bool) {
	for _, p := range r.Patients {
		if p.ID == id {
			return p, true
		}
	}
	return models.Patient{}, false
}

func (r *Registry) EmployeeByID(id string) (models.Employee, bool) {
	for _, e := range r.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

func (r *Registry) VisitByID(id string) (models.Visit, bool) {
	for _, v := range r.Visits {
		if v.ID == id {
			return v, true
		}
	}
	return models.Visit{}, false
}

func (r *Registry) TaskByID(id string) (models.Task, bool) {
	for _, t := range r.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// ActiveBaseLists returns the active day lists, in registry order. Evening
// siblings are excluded: they are addressed through their base list.
func (r *Registry) ActiveBaseLists() []models.VisitList {
	var out []models.VisitList
	for _, l := range r.Lists {
		if l.Active && !routing.IsEveningID(l.ID) {
			out = append(out, l)
		}
	}
	return out
}

// BaseLists returns all day lists regardless of active state.
func (r *Registry) BaseLists() []models.VisitList {
	var out []models.VisitList
	for _, l := range r.Lists {
		if !routing.IsEveningID(l.ID) {
			out = append(out, l)
		}
	}
	return out
}

// VisitCountByList counts visits per list id.
func (r *Registry) VisitCountByList() map[string]int {
	counts := make(map[string]int)
	for _, v := range r.Visits {
		counts[v.ListID]++
	}
	return counts
}

var listNumberPattern = regexp.MustCompile(`^List\s+(\d+)$`)

// NextListName picks the first free "List N" name.
func (r *Registry) NextListName() string {
	used := make(map[int]bool)
	for _, l := range r.Lists {
		if m := listNumberPattern.FindStringSubmatch(l.Name); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				used[n] = true
			}
		}
	}
	n := 1
	for used[n] {
		n++
	}
	return fmt.Sprintf("List %d", n)
}

// Normalize re-syncs every derived field: each base list gets exactly one
// evening sibling mirroring its attributes, orphaned evening lists are
// dropped, and every visit and task has its list id re-derived from its
// time. Invoked at the boundary of each mutating operation and after
// loading a dataset; derived state is never trusted to be consistent on
// read.
func (r *Registry) Normalize() {
	lists := make([]models.VisitList, 0, len(r.Lists))
	baseSeen := make(map[string]bool)
	for _, l := range r.Lists {
		if routing.IsEveningID(l.ID) {
			continue
		}
		if baseSeen[l.ID] {
			continue
		}
		baseSeen[l.ID] = true
		l.IsEvening = false
		lists = append(lists, l, eveningSibling(l))
	}
	r.Lists = lists

	for i, v := range r.Visits {
		r.Visits[i].ListID = routing.RouteList(v.ListID, v.Time)
	}
	for i, t := range r.Tasks {
		r.Tasks[i].ListID = routing.RouteList(t.ListID, taskRoutingTime(t))
	}
}

func eveningSibling(base models.VisitList) models.VisitList {
	return models.VisitList{
		ID:          routing.EveningListID(base.ID),
		Name:        base.Name,
		Description: base.Description,
		Active:      base.Active,
		IsEvening:   true,
		Color:       base.Color,
	}
}

// taskRoutingTime returns the clock time a task routes by; the "general"
// key carries no time and stays on the day list.
func taskRoutingTime(t models.Task) string {
	k := t.TimeKey()
	if k == models.GeneralTimeKey {
		return ""
	}
	return k
}

func newID() string {
	return uuid.New().String()
}
