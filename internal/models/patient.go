package models

// Patient is a care recipient. The engine only reads patient records; CRUD
// lives in the surrounding application.
type Patient struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	BirthDate string   `json:"birth_date,omitempty" yaml:"birth_date,omitempty"` // YYYY-MM-DD
	Address   string   `json:"address,omitempty" yaml:"address,omitempty"`
	Phone     string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Diagnosis string   `json:"diagnosis,omitempty" yaml:"diagnosis,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Employee is a staff record, looked up by id only and never mutated here.
type Employee struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Role   string `json:"role,omitempty" yaml:"role,omitempty"`
	Active bool   `json:"active" yaml:"active"`
}
