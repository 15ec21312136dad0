package cli

import (
	"fmt"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/registry"
)

type VisitLsCmd struct {
	Patient string `short:"p" help:"Only this patient's visits (id or name)."`
	List    string `short:"l" help:"Only visits on this list (id or name)."`
}

func (c *VisitLsCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	var listID string
	if c.List != "" {
		var err error
		if listID, err = resolveListArg(ctx.Reg, c.List); err != nil {
			return err
		}
	}
	patientID := ""
	if c.Patient != "" {
		p, err := resolvePatientArg(ctx.Reg, c.Patient)
		if err != nil {
			return err
		}
		patientID = p.ID
	}

	fmt.Printf("%-20s %-22s %-6s %-22s %s\n", "ID", "PATIENT", "TIME", "WHEN", "LIST")
	for _, v := range ctx.Reg.Visits {
		if patientID != "" && v.PatientID != patientID {
			continue
		}
		if listID != "" && v.ListID != listID {
			continue
		}
		name := "(missing patient)"
		if p, ok := ctx.Reg.PatientByID(v.PatientID); ok {
			name = p.Name
		}
		when := formatWeekdays(v.Weekdays)
		if v.OneTime() {
			when = v.Date
		} else if v.EndDate != "" {
			when += " until " + v.EndDate
		}
		timeStr := v.Time
		if timeStr == "" {
			timeStr = "-"
		}
		fmt.Printf("%-20s %-22s %-6s %-22s %s\n", v.ID, name, timeStr, when, v.ListID)
	}
	return nil
}

type VisitEditCmd struct {
	Visit       string  `arg:"" help:"Visit id."`
	Time        *string `short:"t" help:"New time (HH:MM); empty clears the time."`
	List        *string `short:"l" help:"New target list (id or name); the time still decides day or evening."`
	Weekdays    *string `short:"w" help:"New comma-separated weekdays."`
	EndDate     *string `help:"New end date (YYYY-MM-DD); empty clears it."`
	Description *string `short:"D" help:"New description."`
}

func (c *VisitEditCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	v, ok := ctx.Reg.VisitByID(c.Visit)
	if !ok {
		return fmt.Errorf("no visit with id %q", c.Visit)
	}
	if c.Time != nil {
		v.Time = *c.Time
	}
	if c.List != nil {
		id, err := resolveListArg(ctx.Reg, *c.List)
		if err != nil {
			return err
		}
		v.ListID = id
	}
	if c.Weekdays != nil {
		wds, err := parseWeekdays(*c.Weekdays)
		if err != nil {
			return err
		}
		v.Weekdays = wds
	}
	if c.EndDate != nil {
		v.EndDate = *c.EndDate
	}
	if c.Description != nil {
		v.Description = *c.Description
	}
	if err := ctx.Reg.UpdateVisit(v.ID, v); err != nil {
		return err
	}
	if err := ctx.SaveData(); err != nil {
		return err
	}
	updated, _ := ctx.Reg.VisitByID(v.ID)
	fmt.Printf("Updated visit %s (now on %s)\n", v.ID, updated.ListID)
	return nil
}

type VisitRmCmd struct {
	Visit string `arg:"" help:"Visit id."`
}

func (c *VisitRmCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	if err := ctx.Reg.DeleteVisit(c.Visit); err != nil {
		return err
	}
	if err := ctx.SaveData(); err != nil {
		return err
	}
	fmt.Printf("Deleted visit %s\n", c.Visit)
	return nil
}

func resolvePatientArg(reg *registry.Registry, arg string) (models.Patient, error) {
	if p, ok := reg.PatientByID(arg); ok {
		return p, nil
	}
	for _, p := range reg.Patients {
		if p.Name == arg {
			return p, nil
		}
	}
	return models.Patient{}, fmt.Errorf("no patient matches %q", arg)
}
