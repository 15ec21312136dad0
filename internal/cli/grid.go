package cli

import (
	"fmt"

	"github.com/honucare/rounds/internal/grid"
	"github.com/honucare/rounds/internal/models"
)

func newEditor(ctx *Context, patientArg string) (*grid.Editor, string, error) {
	p, err := resolvePatientArg(ctx.Reg, patientArg)
	if err != nil {
		return nil, "", err
	}
	defaultList := ""
	if lists := ctx.Reg.ActiveBaseLists(); len(lists) > 0 {
		defaultList = lists[0].ID
	}
	return grid.NewEditor(ctx.Reg, p.ID, defaultList), p.Name, nil
}

func commitAndSave(ctx *Context, ed *grid.Editor) error {
	if err := ed.Commit(ctx.Reg); err != nil {
		return err
	}
	return ctx.SaveData()
}

type GridShowCmd struct {
	Patient string `arg:"" help:"Patient id or name."`
}

func (c *GridShowCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	ed, name, err := newEditor(ctx, c.Patient)
	if err != nil {
		return err
	}
	fmt.Printf("Visit grid for %s\n\n", name)
	if len(ed.Rows) == 0 {
		fmt.Println("  No planned visits")
		return nil
	}
	fmt.Printf("%-32s %-6s %-16s", "ROW", "TIME", "LIST")
	for _, wd := range models.WeekdayOrder {
		fmt.Printf(" %-4s", wd)
	}
	fmt.Println()
	for _, r := range ed.Rows {
		timeStr := r.Time
		if timeStr == "" {
			timeStr = "-"
		}
		fmt.Printf("%-32s %-6s %-16s", r.Key(), timeStr, r.ListID)
		for _, wd := range models.WeekdayOrder {
			cell := "."
			if r.Weekdays[wd] {
				cell = "x"
			}
			fmt.Printf(" %-4s", cell)
		}
		fmt.Println()
		if r.Description != "" {
			fmt.Printf("    %s\n", r.Description)
		}
	}
	return nil
}

type GridSetCmd struct {
	Patient string `arg:"" help:"Patient id or name."`
	Weekday string `arg:"" help:"Weekday (mon..sun)."`
	Time    string `short:"t" help:"Visit time (HH:MM); omit for an untimed slot."`
	List    string `short:"l" help:"Target list (id or name); omitted uses the first active list."`
	Desc    string `short:"D" help:"Visit description."`
	From    string `short:"f" help:"Row key to cut the weekday from first."`
}

func (c *GridSetCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	wd, err := models.ParseWeekday(c.Weekday)
	if err != nil {
		return err
	}
	ed, _, err := newEditor(ctx, c.Patient)
	if err != nil {
		return err
	}
	listID := ed.DefaultListID
	if c.List != "" {
		if listID, err = resolveListArg(ctx.Reg, c.List); err != nil {
			return err
		}
	}
	if listID == "" {
		return fmt.Errorf("no active list to place the visit on, pass --list")
	}
	ed.SetCell(c.From, wd, listID, c.Time, c.Desc)
	if err := commitAndSave(ctx, ed); err != nil {
		return err
	}
	fmt.Printf("Placed %s %s on %s\n", wd, orUntimed(c.Time), listID)
	return nil
}

type GridRmCmd struct {
	Patient string `arg:"" help:"Patient id or name."`
	Row     string `arg:"" help:"Row key (see 'grid show')."`
	Weekday string `arg:"" help:"Weekday to clear (mon..sun)."`
}

func (c *GridRmCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	wd, err := models.ParseWeekday(c.Weekday)
	if err != nil {
		return err
	}
	ed, _, err := newEditor(ctx, c.Patient)
	if err != nil {
		return err
	}
	ed.RemoveCell(c.Row, wd)
	if err := commitAndSave(ctx, ed); err != nil {
		return err
	}
	fmt.Printf("Cleared %s from %s\n", wd, c.Row)
	return nil
}

type GridDupCmd struct {
	Patient string `arg:"" help:"Patient id or name."`
	Row     string `arg:"" help:"Source row key to copy."`
	Weekday string `arg:"" help:"Weekday to paste onto."`
	Dest    string `short:"d" help:"Destination row key; its list wins. Omitted pastes onto the default list."`
}

func (c *GridDupCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	wd, err := models.ParseWeekday(c.Weekday)
	if err != nil {
		return err
	}
	ed, _, err := newEditor(ctx, c.Patient)
	if err != nil {
		return err
	}
	if !ed.Copy(c.Row) {
		return fmt.Errorf("no grid row with key %q", c.Row)
	}
	if !ed.Paste(c.Dest, wd) {
		return fmt.Errorf("nothing to paste")
	}
	if err := commitAndSave(ctx, ed); err != nil {
		return err
	}
	fmt.Printf("Copied %s onto %s\n", c.Row, wd)
	return nil
}

func orUntimed(timeStr string) string {
	if timeStr == "" {
		return "an untimed visit"
	}
	return timeStr
}
