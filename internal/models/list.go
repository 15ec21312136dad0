package models

// VisitList is an operational route/shift that owns a subset of visits.
// Every non-evening list has exactly one derived evening sibling whose id is
// the base id plus a reserved suffix; name, description, active flag and
// color are mirrored from the base list on every update and never edited
// directly.
type VisitList struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Active      bool   `json:"active" yaml:"active"`
	IsEvening   bool   `json:"is_evening,omitempty" yaml:"is_evening,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}
