// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bvk/periods/subcmds/cmdutil"
	"github.com/bvk/periods/timerange"
	"github.com/visvasity/cli"
)

type Contains struct {
	cmdutil.RefFlags
}

func (c *Contains) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("this command takes a period name and one or more times: %w", os.ErrInvalid)
	}
	at, err := c.RefFlags.Reference(ctx)
	if err != nil {
		return err
	}
	r, err := timerange.Named(args[0], at)
	if err != nil {
		return fmt.Errorf("could not compute period %q: %w", args[0], err)
	}

	stdout := cli.Stdout(ctx)
	for _, arg := range args[1:] {
		v, err := cmdutil.ParseTime(arg, at, at.Location())
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\t%t\n", v.Format(timerange.Layout), r.IsWithin(v))
	}
	return nil
}

func (c *Contains) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("contains", flag.ContinueOnError)
	c.RefFlags.SetFlags(fset)
	return "contains", fset, cli.CmdFunc(c.run)
}

func (c *Contains) Purpose() string {
	return "Checks if times are within a named period"
}

func (c *Contains) Description() string {
	return `
Command "contains" prints true or false for each time argument depending on
whether it is within the named period. Period end points are inclusive. Time
arguments that are durations are relative to the reference time.

    $ periods contains -at 2006-10-10 previous-month 2006-09-30 2006-10-01
`
}
