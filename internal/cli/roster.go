package cli

import (
	"fmt"
	"strings"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/routing"
	"github.com/honucare/rounds/internal/schedule"
	"github.com/honucare/rounds/internal/utils"
)

type RosterCmd struct {
	List    string `arg:"" optional:"" help:"List id or name; append 'evening' for the evening side. Omit to show every active list."`
	Date    string `short:"d" default:"today" help:"Roster date (YYYY-MM-DD or 'today')."`
	Weekday string `short:"w" help:"Shift the date forward to this weekday (mon..sun)."`
	Evening bool   `short:"e" help:"Show the evening side of the list."`
	All     bool   `short:"a" help:"Include inactive lists."`
}

func (c *RosterCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if c.Weekday != "" {
		wd, err := models.ParseWeekday(c.Weekday)
		if err != nil {
			return err
		}
		if date, err = utils.NextDateWithWeekday(date, wd); err != nil {
			return err
		}
	}
	wd, _ := utils.WeekdayOf(date)
	fmt.Printf("Roster for %s (%s)\n", date, wd.Label())

	var listIDs []string
	if c.List != "" {
		id, err := resolveListArg(ctx.Reg, c.List)
		if err != nil {
			return err
		}
		if c.Evening {
			id = routing.EveningListID(routing.BaseListID(id))
		}
		listIDs = []string{id}
	} else {
		for _, l := range ctx.Reg.Lists {
			if l.Active || c.All {
				listIDs = append(listIDs, l.ID)
			}
		}
	}

	for _, id := range listIDs {
		list, ok := ctx.Reg.ListByID(id)
		if !ok {
			return fmt.Errorf("no visit list matches %q", id)
		}
		rows := ctx.Resolver.RosterFor(id, date)
		if c.List == "" && len(rows) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", listLabel(list))
		printRoster(rows)
	}
	return nil
}

func printRoster(rows []schedule.RosterRow) {
	if len(rows) == 0 {
		fmt.Println("  No visits scheduled")
		return
	}
	for _, row := range rows {
		mark := " "
		if row.Completed {
			mark = "x"
		}
		timeStr := row.TimeKey
		if timeStr == models.GeneralTimeKey {
			timeStr = "  -  "
		}
		name := row.Patient.Name
		if row.AgeKnown {
			name = fmt.Sprintf("%s (%d)", name, row.Age)
		}
		fmt.Printf("  [%s] %-5s  %-28s  %s\n", mark, timeStr, name, summaryLine(row))
		for _, t := range row.Tasks {
			taskMark := " "
			if t.Completed() {
				taskMark = "x"
			}
			fmt.Printf("        [%s] %s\n", taskMark, t.Title)
		}
	}
}

func summaryLine(row schedule.RosterRow) string {
	var parts []string
	if row.Visit.Description != "" {
		parts = append(parts, row.Visit.Description)
	}
	if row.DurationMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", row.DurationMinutes))
	}
	if row.Visit.Kind == models.VisitKindSpecialTask {
		parts = append(parts, "[extra]")
	}
	return strings.Join(parts, "  ")
}
