// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/periods/subcmds/cmdutil"
	"github.com/bvk/periods/timerange"
	"github.com/visvasity/cli"
)

type LastDays struct {
	cmdutil.RefFlags
	cmdutil.OutputFlags

	days int
}

func (c *LastDays) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	at, err := c.RefFlags.Reference(ctx)
	if err != nil {
		return err
	}
	r, err := timerange.LastNDays(at, c.days)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("last-%d-days", c.days)
	return c.OutputFlags.Print(ctx, []*cmdutil.Row{cmdutil.NewRow(name, r)})
}

func (c *LastDays) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("last-days", flag.ContinueOnError)
	c.RefFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	fset.IntVar(&c.days, "days", 7, "Number of days before the reference day")
	return "last-days", fset, cli.CmdFunc(c.run)
}

func (c *LastDays) Purpose() string {
	return "Prints the time range for the last N days, excluding the reference day"
}
