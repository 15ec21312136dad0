package cli

import (
	"fmt"

	"github.com/honucare/rounds/internal/registry"
	"github.com/honucare/rounds/internal/routing"
)

type ListLsCmd struct {
	All bool `short:"a" help:"Include evening siblings as separate rows."`
}

func (c *ListLsCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	counts := ctx.Reg.VisitCountByList()
	fmt.Printf("%-24s %-20s %-8s %7s\n", "ID", "NAME", "ACTIVE", "VISITS")
	for _, l := range ctx.Reg.Lists {
		if l.IsEvening && !c.All {
			continue
		}
		n := counts[l.ID]
		if !l.IsEvening && !c.All {
			// Collapsed view folds the evening side into the base count.
			n += counts[routing.EveningListID(l.ID)]
		}
		active := "yes"
		if !l.Active {
			active = "no"
		}
		fmt.Printf("%-24s %-20s %-8s %7d\n", l.ID, listLabel(l), active, n)
	}
	return nil
}

type ListAddCmd struct {
	Name        string `arg:"" optional:"" help:"List name; omitted names auto-number."`
	Description string `short:"D" help:"List description."`
	Color       string `short:"c" help:"Accent color (hex or theme token)."`
}

func (c *ListAddCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	list := ctx.Reg.AddList(c.Name, c.Description, c.Color)
	if err := ctx.SaveData(); err != nil {
		return err
	}
	fmt.Printf("Added list: %s (ID: %s, evening sibling: %s)\n",
		list.Name, list.ID, routing.EveningListID(list.ID))
	return nil
}

type ListEditCmd struct {
	List        string  `arg:"" help:"List id or name."`
	Name        *string `help:"New name."`
	Description *string `short:"D" help:"New description."`
	Color       *string `short:"c" help:"New accent color."`
	Active      *bool   `help:"Activate or deactivate the list pair."`
}

func (c *ListEditCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	id, err := resolveListArg(ctx.Reg, c.List)
	if err != nil {
		return err
	}
	upd := registry.ListUpdate{
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		Color:       c.Color,
	}
	if err := ctx.Reg.UpdateList(id, upd); err != nil {
		return err
	}
	if err := ctx.SaveData(); err != nil {
		return err
	}
	fmt.Printf("Updated list %s\n", routing.BaseListID(id))
	return nil
}

type ListRmCmd struct {
	List  string `arg:"" help:"List id or name."`
	Force bool   `short:"f" help:"Delete even when visits are attached."`
}

func (c *ListRmCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	id, err := resolveListArg(ctx.Reg, c.List)
	if err != nil {
		return err
	}
	baseID := routing.BaseListID(id)
	counts := ctx.Reg.VisitCountByList()
	attached := counts[baseID] + counts[routing.EveningListID(baseID)]
	if attached > 0 && !c.Force {
		return fmt.Errorf("list %s has %d attached visit(s), use --force to cascade", baseID, attached)
	}
	if err := ctx.Reg.DeleteList(baseID); err != nil {
		return err
	}
	if err := ctx.SaveData(); err != nil {
		return err
	}
	fmt.Printf("Deleted list %s and its evening sibling (%d visit(s) removed)\n", baseID, attached)
	return nil
}
