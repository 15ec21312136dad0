package schedule

import (
	"testing"

	"github.com/honucare/rounds/internal/constants"
	"github.com/honucare/rounds/internal/storage"
)

func TestOverridesRoundTrip(t *testing.T) {
	kv := storage.NewMemoryStore()

	o := LoadOverrides(kv)
	o.SetMove("2026-09-01", "v1", "list-2")
	o.SetPause("p1", "2026-09-01", "2026-09-05")
	o.SetCompletionMark("2026-09-01", "v2", true)

	// A fresh load must see everything the first session persisted.
	o2 := LoadOverrides(kv)
	if target, ok := o2.MoveFor("2026-09-01", "v1"); !ok || target != "list-2" {
		t.Errorf("MoveFor = (%q, %v), want (list-2, true)", target, ok)
	}
	if !o2.PausedOn("p1", "2026-09-03") {
		t.Error("pause not restored")
	}
	if !o2.CompletionMark("2026-09-01", "v2") {
		t.Error("completion mark not restored")
	}
}

func TestOverridesCorruptBlob(t *testing.T) {
	kv := storage.NewMemoryStore()
	if err := kv.Set(constants.KeyVisitMoveOverrides, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	o := LoadOverrides(kv)
	if _, ok := o.MoveFor("2026-09-01", "v1"); ok {
		t.Error("corrupt blob should load as empty state")
	}

	// The store must stay usable after discarding the blob.
	o.SetMove("2026-09-01", "v1", "list-2")
	o2 := LoadOverrides(kv)
	if target, ok := o2.MoveFor("2026-09-01", "v1"); !ok || target != "list-2" {
		t.Errorf("MoveFor after recovery = (%q, %v), want (list-2, true)", target, ok)
	}
}

func TestPausedOn(t *testing.T) {
	kv := storage.NewMemoryStore()
	o := LoadOverrides(kv)
	o.SetPause("p1", "2026-09-10", "2026-09-20")
	o.SetPause("p2", "2026-09-10", "")

	tests := []struct {
		name    string
		patient string
		date    string
		want    bool
	}{
		{"before range", "p1", "2026-09-09", false},
		{"first day", "p1", "2026-09-10", true},
		{"inside range", "p1", "2026-09-15", true},
		{"last day inclusive", "p1", "2026-09-20", true},
		{"after range", "p1", "2026-09-21", false},
		{"open-ended far future", "p2", "2027-01-01", true},
		{"open-ended before start", "p2", "2026-09-09", false},
		{"unknown patient", "p3", "2026-09-15", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := o.PausedOn(tt.patient, tt.date); got != tt.want {
				t.Errorf("PausedOn(%q, %q) = %v, want %v", tt.patient, tt.date, got, tt.want)
			}
		})
	}
}

func TestClearPause(t *testing.T) {
	kv := storage.NewMemoryStore()
	o := LoadOverrides(kv)
	o.SetPause("p1", "2026-09-01", "")
	o.ClearPause("p1")
	if o.PausedOn("p1", "2026-09-02") {
		t.Error("cleared pause still active")
	}
	if LoadOverrides(kv).PausedOn("p1", "2026-09-02") {
		t.Error("cleared pause persisted")
	}
}
