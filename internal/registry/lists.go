package registry

import (
	"fmt"
	"strings"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/routing"
)

// ListUpdate carries optional list attribute changes. Nil fields are left
// untouched.
type ListUpdate struct {
	Name        *string
	Description *string
	Active      *bool
	Color       *string
}

// AddList creates a day list and its evening sibling. A blank name is
// auto-assigned the first free "List N". The returned list is the base.
func (r *Registry) AddList(name, description, color string) models.VisitList {
	if strings.TrimSpace(name) == "" {
		name = r.NextListName()
	}
	base := models.VisitList{
		ID:          "list-" + newID(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Active:      true,
		Color:       color,
	}
	r.Lists = append(r.Lists, base, eveningSibling(base))
	return base
}

// UpdateList applies upd to the list's base and mirrors the change onto the
// evening sibling. An evening id is accepted and redirected to its base.
func (r *Registry) UpdateList(id string, upd ListUpdate) error {
	baseID := routing.BaseListID(id)
	idx := -1
	for i, l := range r.Lists {
		if l.ID == baseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("list %q: %w", id, ErrUnknownList)
	}
	base := &r.Lists[idx]
	if upd.Name != nil {
		base.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Description != nil {
		base.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Active != nil {
		base.Active = *upd.Active
	}
	if upd.Color != nil {
		base.Color = *upd.Color
	}
	r.Normalize()
	return nil
}

// DeleteList removes a base list, its evening sibling, and every visit and
// task attached to either. Passing an evening id deletes the whole pair.
func (r *Registry) DeleteList(id string) error {
	baseID := routing.BaseListID(id)
	if _, ok := r.ListByID(baseID); !ok {
		return fmt.Errorf("list %q: %w", id, ErrUnknownList)
	}
	eveningID := routing.EveningListID(baseID)
	inPair := func(listID string) bool { return listID == baseID || listID == eveningID }

	lists := r.Lists[:0]
	for _, l := range r.Lists {
		if !inPair(l.ID) {
			lists = append(lists, l)
		}
	}
	r.Lists = lists

	visits := r.Visits[:0]
	removedVisits := make(map[string]bool)
	for _, v := range r.Visits {
		if inPair(v.ListID) {
			removedVisits[v.ID] = true
			continue
		}
		visits = append(visits, v)
	}
	r.Visits = visits

	tasks := r.Tasks[:0]
	for _, t := range r.Tasks {
		if inPair(t.ListID) || removedVisits[t.VisitID] {
			continue
		}
		tasks = append(tasks, t)
	}
	r.Tasks = tasks
	return nil
}
