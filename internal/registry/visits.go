package registry

import (
	"fmt"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/routing"
)

// AddVisit stores a visit. The list id is re-derived from the visit time, so
// a 16:00 visit saved against a day list lands on the evening sibling. The
// target base list must exist.
func (r *Registry) AddVisit(v models.Visit) (models.Visit, error) {
	if v.ID == "" {
		v.ID = "visit-" + newID()
	}
	routed, err := r.routeVisit(v)
	if err != nil {
		return models.Visit{}, err
	}
	r.Visits = append(r.Visits, routed)
	return routed, nil
}

// UpdateVisit replaces the visit with the given id, re-deriving its list.
func (r *Registry) UpdateVisit(id string, v models.Visit) error {
	idx := -1
	for i, cur := range r.Visits {
		if cur.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("visit %q: %w", id, ErrUnknownVisit)
	}
	v.ID = id
	routed, err := r.routeVisit(v)
	if err != nil {
		return err
	}
	r.Visits[idx] = routed
	return nil
}

// DeleteVisit removes a visit and any tasks linked to it.
func (r *Registry) DeleteVisit(id string) error {
	idx := -1
	for i, v := range r.Visits {
		if v.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("visit %q: %w", id, ErrUnknownVisit)
	}
	r.Visits = append(r.Visits[:idx], r.Visits[idx+1:]...)

	tasks := r.Tasks[:0]
	for _, t := range r.Tasks {
		if t.VisitID == id {
			continue
		}
		tasks = append(tasks, t)
	}
	r.Tasks = tasks
	return nil
}

// VisitsForPatient returns the patient's visits, optionally including
// special-task visits.
func (r *Registry) VisitsForPatient(patientID string, includeSpecial bool) []models.Visit {
	var out []models.Visit
	for _, v := range r.Visits {
		if v.PatientID != patientID {
			continue
		}
		if !includeSpecial && v.Kind == models.VisitKindSpecialTask {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ReplaceVisitsForPatient swaps out the patient's planned visits wholesale.
// Every incoming visit is validated and routed before anything is removed, so
// a bad row leaves the registry untouched. Special-task visits of the patient
// survive the replacement.
func (r *Registry) ReplaceVisitsForPatient(patientID string, next []models.Visit) error {
	if _, ok := r.PatientByID(patientID); !ok {
		return fmt.Errorf("patient %q: %w", patientID, ErrUnknownPatient)
	}
	routed := make([]models.Visit, 0, len(next))
	for _, v := range next {
		v.PatientID = patientID
		v.Kind = models.VisitKindPlanned
		if v.ID == "" {
			v.ID = "visit-" + newID()
		}
		rv, err := r.routeVisit(v)
		if err != nil {
			return err
		}
		routed = append(routed, rv)
	}

	kept := r.Visits[:0]
	for _, v := range r.Visits {
		if v.PatientID == patientID && v.Kind != models.VisitKindSpecialTask {
			continue
		}
		kept = append(kept, v)
	}
	r.Visits = append(kept, routed...)
	return nil
}

func (r *Registry) routeVisit(v models.Visit) (models.Visit, error) {
	baseID := routing.BaseListID(v.ListID)
	if _, ok := r.ListByID(baseID); !ok {
		return models.Visit{}, fmt.Errorf("visit %q targets list %q: %w", v.ID, v.ListID, ErrUnknownList)
	}
	v.ListID = routing.RouteList(v.ListID, v.Time)
	return v, nil
}
