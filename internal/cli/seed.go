package cli

import (
	"fmt"

	"github.com/honucare/rounds/internal/seed"
)

type SeedCmd struct {
	Path string `arg:"" optional:"" help:"Where to write the demo dataset; defaults to the configured data path."`
}

func (c *SeedCmd) Run(ctx *Context) error {
	path := c.Path
	if path == "" {
		path = ctx.DataPath
	}
	if err := seed.Save(path, seed.Example()); err != nil {
		return err
	}
	fmt.Printf("Wrote demo dataset to %s\n", path)
	return nil
}
