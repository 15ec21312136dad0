package models

import "strings"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a unit of care work grouped into a visit's roster card. Its ListID
// is independently re-derived from VisitTime with the same day/evening rule
// as visits, so a task can be evening-routed without being linked to a visit
// by id. Tasks attach to a special-task visit via VisitID; all other tasks
// group by (PatientID, time key).
type Task struct {
	ID              string     `json:"id" yaml:"id"`
	PatientID       string     `json:"patient_id" yaml:"patient_id"`
	ListID          string     `json:"list_id" yaml:"list_id"`
	VisitID         string     `json:"visit_id,omitempty" yaml:"visit_id,omitempty"`
	VisitTime       string     `json:"visit_time" yaml:"visit_time"` // HH:MM or "general"
	Title           string     `json:"title" yaml:"title"`
	Description     string     `json:"description,omitempty" yaml:"description,omitempty"`
	Status          TaskStatus `json:"status" yaml:"status"`
	DurationMinutes int        `json:"duration_minutes" yaml:"duration_minutes"`
}

// TimeKey returns the trimmed visit-time key, or GeneralTimeKey when blank.
func (t Task) TimeKey() string {
	k := strings.TrimSpace(t.VisitTime)
	if k == "" {
		return GeneralTimeKey
	}
	return k
}

// Completed reports whether the task has been marked done.
func (t Task) Completed() bool {
	return t.Status == TaskStatusCompleted
}
