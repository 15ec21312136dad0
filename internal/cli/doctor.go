package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/honucare/rounds/internal/constants"
	"github.com/honucare/rounds/internal/routing"
	"github.com/honucare/rounds/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	report := func(name string, err error) {
		if err != nil {
			fmt.Printf("❌ %s: FAIL\n   Error: %v\n", name, err)
			hasError = true
			return
		}
		fmt.Printf("✓ %s: OK\n", name)
	}

	report("Dataset readable", checkDataset(ctx))
	report("Key-value store reachable", checkKV(ctx))
	report("Evening siblings consistent", checkSiblings(ctx))
	report("Dangling references", checkDangling(ctx))
	report("Timezone database", checkTimezone())
	report("Clock sanity", checkClock())

	// Warning only: a second running copy can clobber the shared files.
	if err := checkDuplicateProcess(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDataset(ctx *Context) error {
	if ctx.DataMissing {
		return fmt.Errorf("no dataset at %s, run 'rounds init'", ctx.DataPath)
	}
	return nil
}

func checkKV(ctx *Context) error {
	probe := []byte(time.Now().Format(time.RFC3339))
	if err := ctx.KV.Set("rounds.doctorProbe", probe); err != nil {
		return fmt.Errorf("write probe failed: %w", err)
	}
	if _, err := ctx.KV.Get("rounds.doctorProbe"); err != nil {
		return fmt.Errorf("read probe failed: %w", err)
	}
	return ctx.KV.Remove("rounds.doctorProbe")
}

func checkSiblings(ctx *Context) error {
	for _, l := range ctx.Reg.Lists {
		if routing.IsEveningID(l.ID) {
			base := routing.BaseListID(l.ID)
			b, ok := ctx.Reg.ListByID(base)
			if !ok {
				return fmt.Errorf("evening list %s has no base list", l.ID)
			}
			if b.Name != l.Name || b.Active != l.Active {
				return fmt.Errorf("evening list %s out of sync with %s", l.ID, base)
			}
			continue
		}
		if _, ok := ctx.Reg.ListByID(routing.EveningListID(l.ID)); !ok {
			return fmt.Errorf("list %s is missing its evening sibling", l.ID)
		}
	}
	return nil
}

func checkDangling(ctx *Context) error {
	for _, v := range ctx.Reg.Visits {
		if _, ok := ctx.Reg.ListByID(v.ListID); !ok {
			return fmt.Errorf("visit %s references missing list %s", v.ID, v.ListID)
		}
	}
	for _, t := range ctx.Reg.Tasks {
		if t.VisitID == "" {
			continue
		}
		if _, ok := ctx.Reg.VisitByID(t.VisitID); !ok {
			return fmt.Errorf("task %s references missing visit %s", t.ID, t.VisitID)
		}
	}
	return nil
}

func checkTimezone() error {
	if _, err := utils.LoadLocation(constants.DefaultTimezone); err != nil {
		return fmt.Errorf("cannot load %s: %w", constants.DefaultTimezone, err)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkDuplicateProcess() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("cannot list processes: %w", err)
	}
	self := os.Getpid()
	name := filepath.Base(os.Args[0])
	count := 0
	for _, p := range procs {
		if p.Pid() != self && p.Executable() == name {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("%d other %s process(es) running; concurrent writes to the data path are unsupported", count, name)
	}
	return nil
}
