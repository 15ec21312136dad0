package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/honucare/rounds/internal/cli"
	"github.com/honucare/rounds/internal/constants"
	"github.com/honucare/rounds/internal/logger"
	"github.com/honucare/rounds/internal/registry"
	"github.com/honucare/rounds/internal/schedule"
	"github.com/honucare/rounds/internal/seed"
	"github.com/honucare/rounds/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Dataset file path." type:"path" default:"~/.config/rounds/rounds.yaml"`
	State   string `help:"Override state path; a .db suffix selects the SQLite backend." type:"path" default:"~/.config/rounds/state"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize the rounds dataset."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive roster." default:"1"`
	Roster  cli.RosterCmd  `cmd:"" help:"Show the resolved roster for a date."`
	Move    cli.MoveCmd    `cmd:"" help:"Move a visit to another list for one date."`
	Pause   cli.PauseCmd   `cmd:"" help:"Pause all of a patient's visits."`
	Resume  cli.ResumeCmd  `cmd:"" help:"Lift a patient's pause."`
	Done    cli.DoneCmd    `cmd:"" help:"Toggle a visit's completion for a date."`
	Weekday cli.WeekdayCmd `cmd:"" help:"Pin 'today' to a weekday for demos."`
	Seed    cli.SeedCmd    `cmd:"" help:"Write the demo dataset."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks."`
	List    struct {
		Ls   cli.ListLsCmd   `cmd:"" help:"List visit lists." default:"1"`
		Add  cli.ListAddCmd  `cmd:"" help:"Add a visit list (and its evening sibling)."`
		Edit cli.ListEditCmd `cmd:"" help:"Edit a visit list pair."`
		Rm   cli.ListRmCmd   `cmd:"" help:"Delete a visit list pair."`
	} `cmd:"" help:"Manage visit lists."`
	Visits struct {
		Ls   cli.VisitLsCmd   `cmd:"" help:"List visits." default:"1"`
		Edit cli.VisitEditCmd `cmd:"" help:"Edit a visit."`
		Rm   cli.VisitRmCmd   `cmd:"" help:"Delete a visit."`
	} `cmd:"" help:"Manage visits."`
	Grid struct {
		Show cli.GridShowCmd `cmd:"" help:"Show a patient's visit grid." default:"1"`
		Set  cli.GridSetCmd  `cmd:"" help:"Place a visit cell on a weekday."`
		Rm   cli.GridRmCmd   `cmd:"" help:"Clear a weekday from a grid row."`
		Dup  cli.GridDupCmd  `cmd:"" help:"Copy a row's cell onto another weekday."`
	} `cmd:"" help:"Edit a patient's weekly visit grid."`
	Task struct {
		Add cli.TaskAddCmd `cmd:"" help:"Add an extra task with its own visit."`
	} `cmd:"" help:"Manage extra tasks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("rounds"),
		kong.Description("Home-care visit scheduling and list routing"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Data)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not set up logging: %v\n", err)
		os.Exit(1)
	}

	kv, err := storage.Open(CLI.State)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	var reg *registry.Registry
	dataMissing := false
	if _, statErr := os.Stat(CLI.Data); statErr == nil {
		reg, err = seed.Load(CLI.Data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		reg = seed.Example()
		dataMissing = true
	}

	ovr := schedule.LoadOverrides(kv)
	appCtx := &cli.Context{
		Reg:         reg,
		Ovr:         ovr,
		Resolver:    &schedule.Resolver{Reg: reg, Ovr: ovr},
		KV:          kv,
		DataPath:    CLI.Data,
		DataMissing: dataMissing,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
