package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/honucare/rounds/internal/special"
	"github.com/honucare/rounds/internal/utils"
)

type TaskAddCmd struct {
	Title    string `arg:"" optional:"" help:"Task title; omit to fill in interactively."`
	Patient  string `short:"p" help:"Patient id or name."`
	Time     string `short:"t" help:"Task time (HH:MM)."`
	List     string `short:"l" help:"Target list (id or name); omitted picks the closest match from the patient's schedule."`
	Date     string `short:"d" help:"One-time date (YYYY-MM-DD); omit for a recurring task."`
	Weekdays string `short:"w" help:"Comma-separated weekdays for a recurring task."`
	End      string `help:"Last date a recurring task occurs (YYYY-MM-DD)."`
	Duration int    `short:"m" help:"Expected duration in minutes."`
	Desc     string `short:"D" help:"Longer description."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	if c.Title == "" || c.Patient == "" || c.Time == "" {
		if err := c.promptMissing(ctx); err != nil {
			return err
		}
	}

	patient, err := resolvePatientArg(ctx.Reg, c.Patient)
	if err != nil {
		return err
	}
	if _, err := utils.ParseTimeToMinutes(c.Time); err != nil {
		return fmt.Errorf("invalid time %q, use HH:MM", c.Time)
	}

	listID := ""
	recommended := false
	if c.List != "" {
		if listID, err = resolveListArg(ctx.Reg, c.List); err != nil {
			return err
		}
	} else {
		if listID, recommended = special.RecommendListID(ctx.Reg, patient.ID, c.Time); !recommended {
			return fmt.Errorf("no list to recommend for %s, pass one with --list", patient.Name)
		}
	}

	weekdays, err := parseWeekdays(c.Weekdays)
	if err != nil {
		return err
	}
	visit, task, err := special.Create(ctx.Reg, special.Params{
		PatientID:       patient.ID,
		ListID:          listID,
		Time:            c.Time,
		Title:           c.Title,
		Description:     c.Desc,
		Date:            c.Date,
		Weekdays:        weekdays,
		EndDate:         c.End,
		DurationMinutes: c.Duration,
		OneTime:         c.Date != "",
	})
	if err != nil {
		return err
	}
	if err := ctx.SaveData(); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s) on %s\n", task.Title, task.ID, visit.ListID)
	if recommended {
		fmt.Printf("List picked from %s's schedule; override with --list next time if wrong\n", patient.Name)
	}
	return nil
}

// promptMissing collects the required fields through a form when flags were
// left out.
func (c *TaskAddCmd) promptMissing(ctx *Context) error {
	var patientOpts []huh.Option[string]
	for _, p := range ctx.Reg.Patients {
		patientOpts = append(patientOpts, huh.NewOption(p.Name, p.ID))
	}
	if len(patientOpts) == 0 {
		return fmt.Errorf("no patients in the dataset")
	}

	oneTime := c.Date != ""
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Patient").
				Options(patientOpts...).
				Value(&c.Patient),
			huh.NewInput().
				Title("Title").
				Validate(notBlank).
				Value(&c.Title),
			huh.NewInput().
				Title("Time (HH:MM)").
				Validate(validTime).
				Value(&c.Time),
			huh.NewConfirm().
				Title("One-time task?").
				Value(&oneTime),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if oneTime && c.Date == "" {
		dateForm := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Validate(validDateInput).
				Value(&c.Date),
		))
		if err := dateForm.Run(); err != nil {
			return err
		}
	}
	if !oneTime {
		c.Date = ""
	}
	return nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validTime(s string) error {
	if _, err := utils.ParseTimeToMinutes(s); err != nil {
		return fmt.Errorf("use HH:MM")
	}
	return nil
}

func validDateInput(s string) error {
	if !utils.ValidDate(s) {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}
