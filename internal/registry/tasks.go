package registry

import (
	"fmt"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/routing"
)

// AddTask stores a task, routing its list from the visit time. Tasks on the
// "general" slot stay on the day list.
func (r *Registry) AddTask(t models.Task) (models.Task, error) {
	if t.ID == "" {
		t.ID = "task-" + newID()
	}
	if t.Status == "" {
		t.Status = models.TaskStatusPending
	}
	routed, err := r.routeTask(t)
	if err != nil {
		return models.Task{}, err
	}
	r.Tasks = append(r.Tasks, routed)
	return routed, nil
}

// UpdateTask replaces the task with the given id.
func (r *Registry) UpdateTask(id string, t models.Task) error {
	idx := -1
	for i, cur := range r.Tasks {
		if cur.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("task %q: %w", id, ErrUnknownTask)
	}
	t.ID = id
	routed, err := r.routeTask(t)
	if err != nil {
		return err
	}
	r.Tasks[idx] = routed
	return nil
}

// DeleteTask removes a task by id.
func (r *Registry) DeleteTask(id string) error {
	for i, t := range r.Tasks {
		if t.ID == id {
			r.Tasks = append(r.Tasks[:i], r.Tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("task %q: %w", id, ErrUnknownTask)
}

// SetTaskStatus flips a single task between pending and completed.
func (r *Registry) SetTaskStatus(id string, status models.TaskStatus) error {
	for i, t := range r.Tasks {
		if t.ID == id {
			r.Tasks[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("task %q: %w", id, ErrUnknownTask)
}

// TasksForVisit collects the tasks shown under a visit card. Special visits
// own their tasks through the visit link; planned visits pick up the
// patient's unlinked tasks in the same time slot, scoped to the visit's list
// pair so a task on another route does not bleed in.
func (r *Registry) TasksForVisit(v models.Visit) []models.Task {
	visitBase := routing.BaseListID(v.ListID)
	key := v.TimeKey()
	var out []models.Task
	for _, t := range r.Tasks {
		if routing.BaseListID(t.ListID) != visitBase {
			continue
		}
		if v.Kind == models.VisitKindSpecialTask {
			if t.VisitID == v.ID {
				out = append(out, t)
			}
			continue
		}
		if t.PatientID == v.PatientID && t.VisitID == "" && t.TimeKey() == key {
			out = append(out, t)
		}
	}
	return out
}

func (r *Registry) routeTask(t models.Task) (models.Task, error) {
	baseID := routing.BaseListID(t.ListID)
	if _, ok := r.ListByID(baseID); !ok {
		return models.Task{}, fmt.Errorf("task %q targets list %q: %w", t.ID, t.ListID, ErrUnknownList)
	}
	t.ListID = routing.RouteList(t.ListID, taskRoutingTime(t))
	return t, nil
}
