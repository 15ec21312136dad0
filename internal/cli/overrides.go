package cli

import (
	"fmt"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/utils"
)

type MoveCmd struct {
	Visit string `arg:"" help:"Visit id to move."`
	To    string `arg:"" optional:"" help:"Target list (id or name). Omit with --clear."`
	Date  string `short:"d" default:"today" help:"Date the move applies to."`
	Clear bool   `help:"Remove the move override instead."`
}

func (c *MoveCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if c.Clear {
		ctx.Ovr.ClearMove(date, c.Visit)
		fmt.Printf("Cleared move for visit %s on %s\n", c.Visit, date)
		return nil
	}
	if c.To == "" {
		return fmt.Errorf("target list required (or pass --clear)")
	}
	target, err := resolveListArg(ctx.Reg, c.To)
	if err != nil {
		return err
	}
	if err := ctx.Resolver.MoveVisit(date, c.Visit, target); err != nil {
		return err
	}
	effective, _ := ctx.Ovr.MoveFor(date, c.Visit)
	fmt.Printf("Visit %s renders on %s for %s\n", c.Visit, effective, date)
	return nil
}

type PauseCmd struct {
	Patient string `arg:"" help:"Patient id or name."`
	From    string `short:"f" default:"today" help:"First paused date."`
	Until   string `short:"u" help:"Last paused date (inclusive); omit for open-ended."`
}

func (c *PauseCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	p, err := resolvePatientArg(ctx.Reg, c.Patient)
	if err != nil {
		return err
	}
	from, err := ctx.ResolveDate(c.From)
	if err != nil {
		return err
	}
	if c.Until != "" && !utils.ValidDate(c.Until) {
		return fmt.Errorf("invalid until date %q, use YYYY-MM-DD", c.Until)
	}
	if c.Until != "" && c.Until < from {
		return fmt.Errorf("until (%s) is before from (%s)", c.Until, from)
	}
	ctx.Ovr.SetPause(p.ID, from, c.Until)
	if c.Until == "" {
		fmt.Printf("Paused %s from %s (open-ended)\n", p.Name, from)
	} else {
		fmt.Printf("Paused %s from %s to %s\n", p.Name, from, c.Until)
	}
	return nil
}

type ResumeCmd struct {
	Patient string `arg:"" help:"Patient id or name."`
}

func (c *ResumeCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	p, err := resolvePatientArg(ctx.Reg, c.Patient)
	if err != nil {
		return err
	}
	if _, ok := ctx.Ovr.PauseFor(p.ID); !ok {
		fmt.Printf("%s is not paused\n", p.Name)
		return nil
	}
	ctx.Ovr.ClearPause(p.ID)
	fmt.Printf("Resumed %s\n", p.Name)
	return nil
}

type DoneCmd struct {
	Visit string `arg:"" help:"Visit id to toggle."`
	Date  string `short:"d" default:"today" help:"Date the toggle applies to."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Resolver.ToggleCompletion(date, c.Visit); err != nil {
		return err
	}
	// Task status changes live in the dataset, the per-date mark does not.
	if err := ctx.SaveData(); err != nil {
		return err
	}
	fmt.Printf("Toggled completion for visit %s on %s\n", c.Visit, date)
	return nil
}

type WeekdayCmd struct {
	Day string `arg:"" help:"Weekday to pin 'today' to (mon..sun), or 'clear'."`
}

func (c *WeekdayCmd) Run(ctx *Context) error {
	if c.Day == "clear" {
		if err := ctx.SetWeekdayOverride("", true); err != nil {
			return err
		}
		fmt.Println("Cleared weekday override")
		return nil
	}
	wd, err := models.ParseWeekday(c.Day)
	if err != nil {
		return err
	}
	if err := ctx.SetWeekdayOverride(wd, false); err != nil {
		return err
	}
	fmt.Printf("Pinned 'today' to the next %s\n", wd.Label())
	return nil
}
