// Package seed loads and saves the entity dataset as a YAML document. The
// dataset file is the collaboration boundary with the care office: lists,
// patients, employees, visits and tasks live there, while runtime override
// state stays in the key-value store.
package seed

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/registry"
)

// Dataset is the on-disk document shape.
type Dataset struct {
	Lists     []models.VisitList `yaml:"lists"`
	Patients  []models.Patient   `yaml:"patients"`
	Employees []models.Employee  `yaml:"employees"`
	Visits    []models.Visit     `yaml:"visits"`
	Tasks     []models.Task      `yaml:"tasks"`
}

// Load reads and normalizes a dataset into a registry. Missing evening
// siblings are derived and list routing is re-applied, so a hand-edited
// file only needs to describe the day lists.
func Load(path string) (*registry.Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	reg := &registry.Registry{
		Lists:     ds.Lists,
		Patients:  ds.Patients,
		Employees: ds.Employees,
		Visits:    ds.Visits,
		Tasks:     ds.Tasks,
	}
	reg.Normalize()
	return reg, nil
}

// Save writes the registry back to path via a temp file and rename, so a
// crash mid-write never truncates the dataset.
func Save(path string, reg *registry.Registry) error {
	ds := Dataset{
		Lists:     reg.Lists,
		Patients:  reg.Patients,
		Employees: reg.Employees,
		Visits:    reg.Visits,
		Tasks:     reg.Tasks,
	}
	raw, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".rounds-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp dataset: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}
