package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/honucare/rounds/internal/constants"
	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/registry"
	"github.com/honucare/rounds/internal/routing"
	"github.com/honucare/rounds/internal/schedule"
	"github.com/honucare/rounds/internal/seed"
	"github.com/honucare/rounds/internal/storage"
	"github.com/honucare/rounds/internal/utils"
)

type Context struct {
	Reg      *registry.Registry
	Ovr      *schedule.Overrides
	Resolver *schedule.Resolver
	KV       storage.KV
	DataPath string

	// DataMissing is set when no dataset file existed at startup; the
	// registry then holds the demo data that `rounds init` would write.
	DataMissing bool
}

// RequireData guards commands that read or mutate the dataset.
func (c *Context) RequireData() error {
	if c.DataMissing {
		return fmt.Errorf("no dataset at %s, run 'rounds init' first", c.DataPath)
	}
	return nil
}

// SaveData flushes the entity registry back to the dataset file.
func (c *Context) SaveData() error {
	return seed.Save(c.DataPath, c.Reg)
}

// ResolveDate turns a --date value into a concrete date. "today" (or empty)
// resolves in the configured timezone; when a weekday override is pinned,
// today shifts forward to the next matching date so the whole engine keeps
// working on real dates.
func (c *Context) ResolveDate(date string) (string, error) {
	if date != "" && date != "today" {
		if !utils.ValidDate(date) {
			return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD or 'today'", date)
		}
		return date, nil
	}
	today := utils.Today()
	if wd, ok := c.WeekdayOverride(); ok {
		return utils.NextDateWithWeekday(today, wd)
	}
	return today, nil
}

// WeekdayOverride reads the pinned weekday, if one is set.
func (c *Context) WeekdayOverride() (models.Weekday, bool) {
	raw, err := c.KV.Get(constants.KeyDevWeekdayOverride)
	if err != nil {
		return "", false
	}
	var wd models.Weekday
	if err := json.Unmarshal(raw, &wd); err != nil || !wd.Valid() {
		return "", false
	}
	return wd, true
}

// SetWeekdayOverride pins or clears the weekday used for "today".
func (c *Context) SetWeekdayOverride(wd models.Weekday, clear bool) error {
	if clear {
		err := c.KV.Remove(constants.KeyDevWeekdayOverride)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	raw, err := json.Marshal(wd)
	if err != nil {
		return err
	}
	return c.KV.Set(constants.KeyDevWeekdayOverride, raw)
}

// resolveListArg accepts a list id, a base list name, or a name/id with
// "evening" appended, and returns the matching list id.
func resolveListArg(reg *registry.Registry, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if _, ok := reg.ListByID(arg); ok {
		return arg, nil
	}
	wantEvening := false
	name := arg
	if cut, ok := strings.CutSuffix(strings.ToLower(arg), " evening"); ok {
		wantEvening = true
		name = strings.TrimSpace(arg[:len(cut)])
	}
	for _, l := range reg.Lists {
		if !strings.EqualFold(l.Name, name) || routing.IsEveningID(l.ID) != wantEvening {
			continue
		}
		return l.ID, nil
	}
	return "", fmt.Errorf("no visit list matches %q", arg)
}

func parseWeekdays(s string) ([]models.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []models.Weekday
	for _, part := range strings.Split(s, ",") {
		wd, err := models.ParseWeekday(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, wd)
	}
	return out, nil
}

func formatWeekdays(wds []models.Weekday) string {
	if len(wds) == 0 {
		return "-"
	}
	parts := make([]string, len(wds))
	for i, wd := range wds {
		parts[i] = string(wd)
	}
	return strings.Join(parts, ",")
}

func listLabel(l models.VisitList) string {
	if l.IsEvening {
		return l.Name + " (evening)"
	}
	return l.Name
}
