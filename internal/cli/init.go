package cli

import (
	"fmt"
	"os"

	"github.com/honucare/rounds/internal/seed"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing dataset with the demo data."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if _, err := os.Stat(ctx.DataPath); err == nil && !c.Force {
		return fmt.Errorf("dataset already exists at %s (use --force to overwrite)", ctx.DataPath)
	}
	if err := seed.Save(ctx.DataPath, seed.Example()); err != nil {
		return err
	}
	fmt.Printf("Initialized rounds dataset at: %s\n", ctx.DataPath)
	return nil
}
