package schedule

import (
	"encoding/json"
	"errors"

	"github.com/honucare/rounds/internal/constants"
	"github.com/honucare/rounds/internal/logger"
	"github.com/honucare/rounds/internal/storage"
)

// PatientPause suspends all of a patient's visits over an inclusive date
// range. An empty Until leaves the pause open-ended.
type PatientPause struct {
	From  string `json:"from"`
	Until string `json:"until,omitempty"`
}

// Overrides is the date-scoped override state layered on top of the planned
// schedule: per-date visit moves, per-patient pauses and per-date completion
// marks. Each map persists to its own key-value blob; a blob that fails to
// decode is treated as empty rather than aborting startup.
type Overrides struct {
	kv         storage.KV
	moves      map[string]string
	pauses     map[string]PatientPause
	completion map[string]bool
}

// LoadOverrides reads all override blobs from kv. Missing or corrupt blobs
// yield empty state.
func LoadOverrides(kv storage.KV) *Overrides {
	o := &Overrides{
		kv:         kv,
		moves:      map[string]string{},
		pauses:     map[string]PatientPause{},
		completion: map[string]bool{},
	}
	loadBlob(kv, constants.KeyVisitMoveOverrides, &o.moves)
	loadBlob(kv, constants.KeyPatientPause, &o.pauses)
	loadBlob(kv, constants.KeyVisitCompletion, &o.completion)
	return o
}

func loadBlob(kv storage.KV, key string, dst any) {
	raw, err := kv.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("could not read override blob", "key", key, "err", err)
		}
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn("discarding corrupt override blob", "key", key, "err", err)
	}
}

func (o *Overrides) persist(key string, src any) {
	raw, err := json.Marshal(src)
	if err != nil {
		logger.Warn("could not encode override blob", "key", key, "err", err)
		return
	}
	if err := o.kv.Set(key, raw); err != nil {
		logger.Warn("could not persist override blob", "key", key, "err", err)
	}
}

func overrideKey(date, visitID string) string {
	return date + "|" + visitID
}

// SetMove records that a visit renders on targetListID for one date.
func (o *Overrides) SetMove(date, visitID, targetListID string) {
	o.moves[overrideKey(date, visitID)] = targetListID
	o.persist(constants.KeyVisitMoveOverrides, o.moves)
}

// ClearMove removes a visit's move override for one date.
func (o *Overrides) ClearMove(date, visitID string) {
	delete(o.moves, overrideKey(date, visitID))
	o.persist(constants.KeyVisitMoveOverrides, o.moves)
}

// MoveFor returns the override target list for a visit on a date, if set.
func (o *Overrides) MoveFor(date, visitID string) (string, bool) {
	target, ok := o.moves[overrideKey(date, visitID)]
	return target, ok
}

// SetPause suspends a patient from the given date. An empty until leaves the
// pause open-ended.
func (o *Overrides) SetPause(patientID, from, until string) {
	o.pauses[patientID] = PatientPause{From: from, Until: until}
	o.persist(constants.KeyPatientPause, o.pauses)
}

// ClearPause lifts a patient's pause.
func (o *Overrides) ClearPause(patientID string) {
	delete(o.pauses, patientID)
	o.persist(constants.KeyPatientPause, o.pauses)
}

// PauseFor returns the patient's pause record, if any.
func (o *Overrides) PauseFor(patientID string) (PatientPause, bool) {
	p, ok := o.pauses[patientID]
	return p, ok
}

// PausedOn reports whether a patient is paused on the date. The range is
// inclusive on both ends.
func (o *Overrides) PausedOn(patientID, date string) bool {
	p, ok := o.pauses[patientID]
	if !ok {
		return false
	}
	if date < p.From {
		return false
	}
	return p.Until == "" || date <= p.Until
}

// CompletionMark reports the per-date completion mark for a visit. The mark
// only carries meaning for visits without linked tasks.
func (o *Overrides) CompletionMark(date, visitID string) bool {
	return o.completion[overrideKey(date, visitID)]
}

// SetCompletionMark sets or clears the per-date completion mark.
func (o *Overrides) SetCompletionMark(date, visitID string, done bool) {
	k := overrideKey(date, visitID)
	if done {
		o.completion[k] = true
	} else {
		delete(o.completion, k)
	}
	o.persist(constants.KeyVisitCompletion, o.completion)
}
