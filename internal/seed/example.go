package seed

import (
	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/registry"
)

// Example builds a small demo registry: three routes, a handful of
// patients, a recurring schedule and a few linked tasks. Times past 15:00
// route to evening siblings during normalization.
func Example() *registry.Registry {
	allWeek := []models.Weekday{
		models.Monday, models.Tuesday, models.Wednesday,
		models.Thursday, models.Friday, models.Saturday, models.Sunday,
	}
	weekdaysOnly := []models.Weekday{
		models.Monday, models.Tuesday, models.Wednesday, models.Thursday, models.Friday,
	}

	reg := &registry.Registry{
		Lists: []models.VisitList{
			{ID: "list-north", Name: "North Route", Description: "City centre and north side", Active: true, Color: "#7aa2f7"},
			{ID: "list-south", Name: "South Route", Description: "South side and harbour", Active: true, Color: "#9ece6a"},
			{ID: "list-relief", Name: "Relief", Description: "Overflow and cover shifts", Active: false, Color: "#e0af68"},
		},
		Patients: []models.Patient{
			{ID: "pat-aase", Name: "Åse Berg", BirthDate: "1938-04-12", Address: "Fjellveien 3", Phone: "412 33 810", Diagnosis: "Diabetes type 2", Tags: []string{"insulin"}},
			{ID: "pat-odd", Name: "Odd Lien", BirthDate: "1945-11-02", Address: "Strandgata 18", Phone: "907 44 215", Diagnosis: "KOLS"},
			{ID: "pat-gerd", Name: "Gerd Moen", BirthDate: "1951-07-23", Address: "Bakkegata 7B", Phone: "454 09 112", Diagnosis: "Demens", Tags: []string{"nøkkelboks"}},
			{ID: "pat-kari", Name: "Kari Strand", BirthDate: "1942-01-30", Address: "Løkkeveien 22", Phone: "468 71 530"},
		},
		Employees: []models.Employee{
			{ID: "emp-nina", Name: "Nina Haugen", Role: "sykepleier", Active: true},
			{ID: "emp-per", Name: "Per Dahl", Role: "helsefagarbeider", Active: true},
		},
		Visits: []models.Visit{
			{ID: "visit-aase-am", PatientID: "pat-aase", ListID: "list-north", Time: "08:30", Weekdays: allWeek, Description: "Insulin og frokost"},
			{ID: "visit-aase-pm", PatientID: "pat-aase", ListID: "list-north", Time: "16:30", Weekdays: allWeek, Description: "Insulin kveld"},
			{ID: "visit-odd-am", PatientID: "pat-odd", ListID: "list-south", Time: "09:15", Weekdays: weekdaysOnly, Description: "Medisiner og inhalasjon"},
			{ID: "visit-gerd-lunch", PatientID: "pat-gerd", ListID: "list-north", Time: "11:45", Weekdays: allWeek, Description: "Middag og tilsyn"},
			{ID: "visit-gerd-eve", PatientID: "pat-gerd", ListID: "list-north", Time: "20:00", Weekdays: allWeek, Description: "Kveldsstell"},
			{ID: "visit-kari-flex", PatientID: "pat-kari", ListID: "list-south", Weekdays: weekdaysOnly, Description: "Tilsyn ved anledning"},
		},
		Tasks: []models.Task{
			{ID: "task-aase-insulin", PatientID: "pat-aase", ListID: "list-north", VisitTime: "08:30", Title: "Sette insulin", Status: models.TaskStatusPending, DurationMinutes: 10},
			{ID: "task-aase-frokost", PatientID: "pat-aase", ListID: "list-north", VisitTime: "08:30", Title: "Tilberede frokost", Status: models.TaskStatusPending, DurationMinutes: 15},
			{ID: "task-odd-medisin", PatientID: "pat-odd", ListID: "list-south", VisitTime: "09:15", Title: "Dele ut medisiner", Status: models.TaskStatusPending, DurationMinutes: 5},
			{ID: "task-gerd-middag", PatientID: "pat-gerd", ListID: "list-north", VisitTime: "11:45", Title: "Varme middag", Status: models.TaskStatusPending, DurationMinutes: 20},
		},
	}
	reg.Normalize()
	return reg
}
