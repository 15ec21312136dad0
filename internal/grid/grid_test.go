package grid

import (
	"testing"

	"github.com/honucare/rounds/internal/models"
)

func wd(days ...models.Weekday) map[models.Weekday]bool {
	set := make(map[models.Weekday]bool)
	for _, d := range days {
		set[d] = true
	}
	return set
}

func TestNormalizeMergesRows(t *testing.T) {
	rows := []Row{
		{ListID: "list-1", Time: "08:00", Description: "", Weekdays: wd(models.Monday)},
		{ListID: "list-1", Time: "08:00", Description: "Morning care", Weekdays: wd(models.Wednesday)},
		{ListID: "list-2", Time: "08:00", Weekdays: wd(models.Monday)},
	}
	got := Normalize(rows)
	if len(got) != 2 {
		t.Fatalf("normalized to %d rows, want 2", len(got))
	}
	merged := got[0]
	if merged.ListID != "list-1" {
		t.Fatalf("rows out of order: %v", got)
	}
	if !merged.Weekdays[models.Monday] || !merged.Weekdays[models.Wednesday] {
		t.Error("weekday sets not unioned")
	}
	if merged.Description != "Morning care" {
		t.Errorf("description = %q, want the first non-blank one", merged.Description)
	}
}

func TestNormalizeDropsEmptyRows(t *testing.T) {
	rows := []Row{
		{ListID: "list-1", Time: "08:00", Weekdays: map[models.Weekday]bool{}},
		{ListID: "list-1", Time: "09:00", Weekdays: wd(models.Friday)},
	}
	got := Normalize(rows)
	if len(got) != 1 || got[0].Time != "09:00" {
		t.Errorf("normalized = %v, want only the 09:00 row", got)
	}
}

func TestNormalizeSortOrder(t *testing.T) {
	rows := []Row{
		{ListID: "list-2", Time: "", Weekdays: wd(models.Monday)},
		{ListID: "list-1", Time: "14:00", Weekdays: wd(models.Monday)},
		{ListID: "list-2", Time: "08:00", Weekdays: wd(models.Monday)},
		{ListID: "list-1", Time: "08:00", Weekdays: wd(models.Monday)},
	}
	got := Normalize(rows)
	wantKeys := []string{
		"list-1::08:00",
		"list-2::08:00",
		"list-1::14:00",
		"list-2::__untimed__",
	}
	for i, key := range wantKeys {
		if got[i].Key() != key {
			t.Fatalf("sort order[%d] = %s, want %s", i, got[i].Key(), key)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	rows := []Row{
		{ListID: "list-1", Time: "08:00", Description: "a", Weekdays: wd(models.Monday, models.Friday)},
		{ListID: "list-1", Time: "", Weekdays: wd(models.Tuesday)},
		{ListID: "list-1", Time: "08:00", Description: "b", Weekdays: wd(models.Sunday)},
	}
	once := Normalize(rows)
	twice := Normalize(once)
	if len(once) != len(twice) {
		t.Fatalf("row count changed on second pass: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Key() != twice[i].Key() || once[i].Description != twice[i].Description {
			t.Errorf("row %d changed on second pass", i)
		}
		for d := range once[i].Weekdays {
			if !twice[i].Weekdays[d] {
				t.Errorf("row %d lost weekday %s", i, d)
			}
		}
	}
}

func TestFromVisitsSkipsSpecialAndOneTime(t *testing.T) {
	visits := []models.Visit{
		{ID: "v1", ListID: "list-1-evening", Time: "19:00", Weekdays: []models.Weekday{models.Monday}},
		{ID: "v2", ListID: "list-1", Time: "10:00", Date: "2026-09-01", Kind: models.VisitKindSpecialTask},
		{ID: "v3", ListID: "list-1", Time: "10:00", Date: "2026-09-02"},
	}
	got := FromVisits(visits)
	if len(got) != 1 {
		t.Fatalf("rows = %v, want a single planned row", got)
	}
	// Evening split collapses back to the base list in the grid.
	if got[0].ListID != "list-1" {
		t.Errorf("row list = %q, want list-1", got[0].ListID)
	}
}

func TestEditorCutPaste(t *testing.T) {
	ed := &Editor{
		PatientID:     "p1",
		DefaultListID: "list-1",
		Rows: Normalize([]Row{
			{ListID: "list-1", Time: "08:00", Description: "Morning", Weekdays: wd(models.Monday, models.Tuesday)},
		}),
	}

	// Moving Tuesday to a new slot cuts it from the source row.
	ed.SetCell("list-1::08:00", models.Tuesday, "list-2", "09:00", "Morning")
	if len(ed.Rows) != 2 {
		t.Fatalf("rows = %v, want 2", ed.Rows)
	}
	src := ed.Rows[0]
	if src.Weekdays[models.Tuesday] || !src.Weekdays[models.Monday] {
		t.Errorf("source row weekdays = %v", src.Weekdays)
	}
	if ed.Rows[1].Key() != "list-2::09:00" || !ed.Rows[1].Weekdays[models.Tuesday] {
		t.Errorf("target row = %+v", ed.Rows[1])
	}
}

func TestEditorCutLastWeekdayDropsRow(t *testing.T) {
	ed := &Editor{
		DefaultListID: "list-1",
		Rows: Normalize([]Row{
			{ListID: "list-1", Time: "08:00", Weekdays: wd(models.Monday)},
		}),
	}
	ed.RemoveCell("list-1::08:00", models.Monday)
	if len(ed.Rows) != 0 {
		t.Errorf("rows = %v, want none", ed.Rows)
	}
}

func TestEditorCopyPaste(t *testing.T) {
	ed := &Editor{
		DefaultListID: "list-1",
		Rows: Normalize([]Row{
			{ListID: "list-2", Time: "12:00", Description: "Wound care", Weekdays: wd(models.Monday)},
			{ListID: "list-2", Time: "08:00", Description: "Other", Weekdays: wd(models.Wednesday, models.Friday)},
		}),
	}
	if !ed.Copy("list-2::12:00") {
		t.Fatal("copy failed")
	}

	// Pasting onto a row moves the weekday off it and onto the clipboard's
	// time slot within the same list.
	if !ed.Paste("list-2::08:00", models.Wednesday) {
		t.Fatal("paste failed")
	}
	rows := make(map[string]Row)
	for _, r := range ed.Rows {
		rows[r.Key()] = r
	}
	src := rows["list-2::08:00"]
	if src.Weekdays[models.Wednesday] || !src.Weekdays[models.Friday] {
		t.Errorf("pasted-onto row weekdays = %v, want wednesday cut", src.Weekdays)
	}
	dest := rows["list-2::12:00"]
	if !dest.Weekdays[models.Monday] || !dest.Weekdays[models.Wednesday] {
		t.Errorf("clipboard slot weekdays = %v", dest.Weekdays)
	}

	// Pasting into the open area lands on the default list with the
	// clipboard's time and description.
	if !ed.Paste("", models.Sunday) {
		t.Fatal("open-area paste failed")
	}
	found := false
	for _, r := range ed.Rows {
		if r.Key() == "list-1::12:00" && r.Weekdays[models.Sunday] && r.Description == "Wound care" {
			found = true
		}
	}
	if !found {
		t.Errorf("open-area paste result missing: %v", ed.Rows)
	}
}

func TestEditorPasteAdoptsDestinationList(t *testing.T) {
	ed := &Editor{
		DefaultListID: "list-1",
		Rows: Normalize([]Row{
			{ListID: "list-2", Time: "08:00", Description: "Wound care", Weekdays: wd(models.Monday)},
			{ListID: "list-3", Time: "09:00", Description: "Other", Weekdays: wd(models.Friday)},
		}),
	}
	if !ed.Copy("list-2::08:00") {
		t.Fatal("copy failed")
	}
	if !ed.Paste("list-3::09:00", models.Friday) {
		t.Fatal("paste failed")
	}
	// Friday left the 09:00 row, which drops now that it is empty, and a
	// new row carries the clipboard's time on the destination's list.
	for _, r := range ed.Rows {
		if r.Key() == "list-3::09:00" {
			t.Fatalf("emptied destination row survived: %+v", r)
		}
	}
	found := false
	for _, r := range ed.Rows {
		if r.Key() == "list-3::08:00" && r.Weekdays[models.Friday] && r.Description == "Wound care" {
			found = true
		}
	}
	if !found {
		t.Errorf("pasted row missing: %v", ed.Rows)
	}
}

func TestEditorSetCellOverwritesDescription(t *testing.T) {
	ed := &Editor{
		DefaultListID: "list-1",
		Rows: Normalize([]Row{
			{ListID: "list-1", Time: "08:00", Description: "Old note", Weekdays: wd(models.Monday)},
		}),
	}
	// Re-editing a cell in place changes only the description.
	ed.SetCell("list-1::08:00", models.Monday, "list-1", "08:00", "New note")
	if len(ed.Rows) != 1 {
		t.Fatalf("rows = %v, want 1", ed.Rows)
	}
	if ed.Rows[0].Description != "New note" {
		t.Errorf("description = %q, want %q", ed.Rows[0].Description, "New note")
	}
	if !ed.Rows[0].Weekdays[models.Monday] {
		t.Errorf("weekdays = %v, monday lost", ed.Rows[0].Weekdays)
	}

	// Moving a cell onto an occupied slot brings its description along.
	ed.Rows = Normalize(append(ed.Rows,
		Row{ListID: "list-1", Time: "10:00", Description: "Late round", Weekdays: wd(models.Tuesday)},
	))
	ed.SetCell("list-1::10:00", models.Tuesday, "list-1", "08:00", "Joint note")
	if len(ed.Rows) != 1 {
		t.Fatalf("rows = %v, want merged single row", ed.Rows)
	}
	got := ed.Rows[0]
	if got.Description != "Joint note" {
		t.Errorf("description = %q, want %q", got.Description, "Joint note")
	}
	if !got.Weekdays[models.Monday] || !got.Weekdays[models.Tuesday] {
		t.Errorf("weekdays = %v, want monday and tuesday", got.Weekdays)
	}
}

func TestEditorPasteWithoutCopy(t *testing.T) {
	ed := &Editor{DefaultListID: "list-1"}
	if ed.Paste("", models.Monday) {
		t.Error("paste with empty clipboard should report false")
	}
}
