package registry

import (
	"errors"
	"testing"

	"github.com/honucare/rounds/internal/models"
)

var allWeek = []models.Weekday{
	models.Monday, models.Tuesday, models.Wednesday,
	models.Thursday, models.Friday, models.Saturday, models.Sunday,
}

func testRegistry() *Registry {
	reg := &Registry{
		Lists: []models.VisitList{
			{ID: "list-1", Name: "North", Active: true},
			{ID: "list-2", Name: "South", Active: true},
		},
		Patients: []models.Patient{
			{ID: "p1", Name: "Astrid"},
		},
	}
	reg.Normalize()
	return reg
}

func TestAddListCreatesEveningSibling(t *testing.T) {
	reg := testRegistry()
	base := reg.AddList("Harbour", "boats and docks", "#ff0000")

	evening, ok := reg.ListByID(base.ID + "-evening")
	if !ok {
		t.Fatal("evening sibling not created")
	}
	if !evening.IsEvening {
		t.Error("sibling not flagged as evening")
	}
	if evening.Name != base.Name || evening.Color != base.Color || evening.Active != base.Active {
		t.Error("sibling attributes do not mirror the base")
	}
}

func TestAddListAutoName(t *testing.T) {
	reg := testRegistry()
	first := reg.AddList("", "", "")
	if first.Name != "List 1" {
		t.Errorf("auto name = %q, want List 1", first.Name)
	}
	second := reg.AddList("  ", "", "")
	if second.Name != "List 2" {
		t.Errorf("auto name = %q, want List 2", second.Name)
	}
}

func TestUpdateListMirrorsSibling(t *testing.T) {
	reg := testRegistry()
	name := "Renamed"
	inactive := false
	// Addressing the evening id must redirect to the base.
	if err := reg.UpdateList("list-1-evening", ListUpdate{Name: &name, Active: &inactive}); err != nil {
		t.Fatal(err)
	}
	base, _ := reg.ListByID("list-1")
	evening, _ := reg.ListByID("list-1-evening")
	if base.Name != "Renamed" || evening.Name != "Renamed" {
		t.Errorf("names = (%q, %q), want Renamed on both", base.Name, evening.Name)
	}
	if base.Active || evening.Active {
		t.Error("active flag did not propagate to both sides")
	}
}

func TestDeleteListCascades(t *testing.T) {
	reg := testRegistry()
	if _, err := reg.AddVisit(models.Visit{ID: "v-day", PatientID: "p1", ListID: "list-1", Time: "08:00", Weekdays: allWeek}); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.AddVisit(models.Visit{ID: "v-eve", PatientID: "p1", ListID: "list-1", Time: "20:00", Weekdays: allWeek}); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.AddVisit(models.Visit{ID: "v-other", PatientID: "p1", ListID: "list-2", Time: "08:00", Weekdays: allWeek}); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.AddTask(models.Task{ID: "t-eve", PatientID: "p1", ListID: "list-1", VisitTime: "20:00", Title: "Evening meds"}); err != nil {
		t.Fatal(err)
	}

	if err := reg.DeleteList("list-1"); err != nil {
		t.Fatal(err)
	}

	if _, ok := reg.ListByID("list-1-evening"); ok {
		t.Error("evening sibling survived deletion")
	}
	for _, id := range []string{"v-day", "v-eve"} {
		if _, ok := reg.VisitByID(id); ok {
			t.Errorf("visit %s survived list deletion", id)
		}
	}
	if _, ok := reg.TaskByID("t-eve"); ok {
		t.Error("task survived list deletion")
	}
	if _, ok := reg.VisitByID("v-other"); !ok {
		t.Error("visit on an unrelated list was deleted")
	}
}

func TestVisitRouting(t *testing.T) {
	reg := testRegistry()
	tests := []struct {
		name string
		list string
		time string
		want string
	}{
		{"day time", "list-1", "08:00", "list-1"},
		{"cutoff stays on day", "list-1", "15:00", "list-1"},
		{"evening time", "list-1", "16:00", "list-1-evening"},
		{"evening id with day time", "list-1-evening", "08:00", "list-1"},
		{"no time", "list-1", "", "list-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reg.AddVisit(models.Visit{PatientID: "p1", ListID: tt.list, Time: tt.time, Weekdays: allWeek})
			if err != nil {
				t.Fatal(err)
			}
			if v.ListID != tt.want {
				t.Errorf("routed to %q, want %q", v.ListID, tt.want)
			}
		})
	}
}

func TestUpdateVisitReroutes(t *testing.T) {
	reg := testRegistry()
	v, err := reg.AddVisit(models.Visit{PatientID: "p1", ListID: "list-1", Time: "08:00", Weekdays: allWeek})
	if err != nil {
		t.Fatal(err)
	}
	v.Time = "16:00"
	if err := reg.UpdateVisit(v.ID, v); err != nil {
		t.Fatal(err)
	}
	got, _ := reg.VisitByID(v.ID)
	if got.ListID != "list-1-evening" {
		t.Errorf("list after time change = %q, want list-1-evening", got.ListID)
	}
}

func TestAddVisitUnknownList(t *testing.T) {
	reg := testRegistry()
	_, err := reg.AddVisit(models.Visit{PatientID: "p1", ListID: "list-404", Time: "08:00"})
	if !errors.Is(err, ErrUnknownList) {
		t.Errorf("err = %v, want ErrUnknownList", err)
	}
}

func TestDeleteVisitRemovesLinkedTasks(t *testing.T) {
	reg := testRegistry()
	v, err := reg.AddVisit(models.Visit{PatientID: "p1", ListID: "list-1", Time: "08:00", Date: "2026-09-01", Kind: models.VisitKindSpecialTask})
	if err != nil {
		t.Fatal(err)
	}
	task, err := reg.AddTask(models.Task{PatientID: "p1", ListID: "list-1", VisitID: v.ID, VisitTime: "08:00", Title: "Dressing change"})
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.DeleteVisit(v.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := reg.TaskByID(task.ID); ok {
		t.Error("linked task survived visit deletion")
	}
}

func TestReplaceVisitsForPatient(t *testing.T) {
	reg := testRegistry()
	reg.Patients = append(reg.Patients, models.Patient{ID: "p2", Name: "Bjarne"})
	if _, err := reg.AddVisit(models.Visit{ID: "v-old", PatientID: "p1", ListID: "list-1", Time: "08:00", Weekdays: allWeek}); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.AddVisit(models.Visit{ID: "v-keep", PatientID: "p2", ListID: "list-1", Time: "09:00", Weekdays: allWeek}); err != nil {
		t.Fatal(err)
	}
	special, err := reg.AddVisit(models.Visit{ID: "v-special", PatientID: "p1", ListID: "list-1", Time: "10:00", Date: "2026-09-01", Kind: models.VisitKindSpecialTask})
	if err != nil {
		t.Fatal(err)
	}

	err = reg.ReplaceVisitsForPatient("p1", []models.Visit{
		{ListID: "list-2", Time: "12:00", Weekdays: allWeek},
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := reg.VisitByID("v-old"); ok {
		t.Error("old planned visit survived replacement")
	}
	if _, ok := reg.VisitByID("v-keep"); !ok {
		t.Error("other patient's visit was removed")
	}
	if _, ok := reg.VisitByID(special.ID); !ok {
		t.Error("special-task visit was removed")
	}
	if got := reg.VisitsForPatient("p1", false); len(got) != 1 || got[0].ListID != "list-2" {
		t.Errorf("replacement visits = %v", got)
	}
}

func TestReplaceVisitsForPatientAtomic(t *testing.T) {
	reg := testRegistry()
	if _, err := reg.AddVisit(models.Visit{ID: "v-old", PatientID: "p1", ListID: "list-1", Time: "08:00", Weekdays: allWeek}); err != nil {
		t.Fatal(err)
	}

	err := reg.ReplaceVisitsForPatient("p1", []models.Visit{
		{ListID: "list-2", Time: "12:00", Weekdays: allWeek},
		{ListID: "list-404", Time: "13:00", Weekdays: allWeek},
	})
	if !errors.Is(err, ErrUnknownList) {
		t.Fatalf("err = %v, want ErrUnknownList", err)
	}
	if _, ok := reg.VisitByID("v-old"); !ok {
		t.Error("failed replacement must leave existing visits untouched")
	}
}

func TestTasksForVisitGrouping(t *testing.T) {
	reg := testRegistry()
	visit, err := reg.AddVisit(models.Visit{ID: "v1", PatientID: "p1", ListID: "list-1", Time: "10:00", Weekdays: allWeek})
	if err != nil {
		t.Fatal(err)
	}
	special, err := reg.AddVisit(models.Visit{ID: "v2", PatientID: "p1", ListID: "list-1", Time: "10:00", Date: "2026-09-01", Kind: models.VisitKindSpecialTask})
	if err != nil {
		t.Fatal(err)
	}
	mustAdd := func(task models.Task) models.Task {
		t.Helper()
		got, err := reg.AddTask(task)
		if err != nil {
			t.Fatal(err)
		}
		return got
	}
	slotTask := mustAdd(models.Task{ID: "t-slot", PatientID: "p1", ListID: "list-1", VisitTime: "10:00", Title: "Slot task"})
	linkedTask := mustAdd(models.Task{ID: "t-linked", PatientID: "p1", ListID: "list-1", VisitID: special.ID, VisitTime: "10:00", Title: "Linked task"})
	mustAdd(models.Task{ID: "t-other-list", PatientID: "p1", ListID: "list-2", VisitTime: "10:00", Title: "Other route"})
	mustAdd(models.Task{ID: "t-other-time", PatientID: "p1", ListID: "list-1", VisitTime: "11:00", Title: "Other slot"})

	got := reg.TasksForVisit(visit)
	if len(got) != 1 || got[0].ID != slotTask.ID {
		t.Errorf("planned visit tasks = %v, want just %s", got, slotTask.ID)
	}
	got = reg.TasksForVisit(special)
	if len(got) != 1 || got[0].ID != linkedTask.ID {
		t.Errorf("special visit tasks = %v, want just %s", got, linkedTask.ID)
	}
}

func TestNormalizeDerivesMissingSiblings(t *testing.T) {
	reg := &Registry{
		Lists: []models.VisitList{
			{ID: "list-1", Name: "North", Active: true},
			{ID: "list-orphan-evening", Name: "Orphan", IsEvening: true},
		},
		Visits: []models.Visit{
			{ID: "v1", PatientID: "p1", ListID: "list-1", Time: "19:00", Weekdays: allWeek},
		},
	}
	reg.Normalize()

	if _, ok := reg.ListByID("list-1-evening"); !ok {
		t.Error("missing evening sibling not derived")
	}
	if _, ok := reg.ListByID("list-orphan-evening"); ok {
		t.Error("orphan evening list not dropped")
	}
	v, _ := reg.VisitByID("v1")
	if v.ListID != "list-1-evening" {
		t.Errorf("visit list = %q, want list-1-evening", v.ListID)
	}
}
