// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/bvk/periods/subcmds/cmdutil"
	"github.com/bvk/periods/timerange"
	"github.com/visvasity/cli"
)

type Show struct {
	cmdutil.RefFlags
	cmdutil.OutputFlags
}

func (c *Show) run(ctx context.Context, args []string) error {
	at, err := c.RefFlags.Reference(ctx)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = timerange.Names()
	}

	var rows []*cmdutil.Row
	for _, name := range names {
		r, err := timerange.Named(name, at)
		if err != nil {
			return fmt.Errorf("could not compute period %q: %w", name, err)
		}
		slog.DebugContext(ctx, "computed period", "name", name, "at", at, "range", r)
		rows = append(rows, cmdutil.NewRow(name, r))
	}
	return c.OutputFlags.Print(ctx, rows)
}

func (c *Show) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("show", flag.ContinueOnError)
	c.RefFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "show", fset, cli.CmdFunc(c.run)
}

func (c *Show) Purpose() string {
	return "Prints the time ranges for named periods"
}

func (c *Show) Description() string {
	return `
Command "show" prints the begin and end times for one or more named periods
relative to a reference time. All periods are printed when no names are given.
Use the "names" command to list the period names.

Both ends of the printed ranges are inclusive. Day boundaries are 00:00:00.000
and 23:59:59.999 in the reference time zone. The "*-to-date" periods end at the
exact reference time.

EXAMPLES

    # Print all periods relative to now

    $ periods show

    # Print yesterday and the previous quarter for a given time

    $ periods show -at 2006-01-15 yesterday previous-quarter

    # Print the last 30 days in the UTC time zone as JSON

    $ periods show -zone UTC -f json last-30-days
`
}
