// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/periods/quarter"
	"github.com/bvk/periods/subcmds/cmdutil"
	"github.com/bvk/periods/timerange"
	"github.com/visvasity/cli"
)

type Quarter struct {
	cmdutil.RefFlags
	cmdutil.OutputFlags

	year int
}

func (c *Quarter) run(ctx context.Context, args []string) error {
	at, err := c.RefFlags.Reference(ctx)
	if err != nil {
		return err
	}
	year := c.year
	if year == 0 {
		year = at.Year()
	}

	qs := quarter.All()
	if len(args) != 0 {
		qs = qs[:0]
		for _, arg := range args {
			q, err := quarter.Parse(arg)
			if err != nil {
				return err
			}
			qs = append(qs, q)
		}
	}

	var rows []*cmdutil.Row
	for _, q := range qs {
		r, err := timerange.Quarter(year, q, at.Location())
		if err != nil {
			return err
		}
		rows = append(rows, cmdutil.NewRow(fmt.Sprintf("%d-%s", year, q), r))
	}
	return c.OutputFlags.Print(ctx, rows)
}

func (c *Quarter) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("quarter", flag.ContinueOnError)
	c.RefFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	fset.IntVar(&c.year, "year", 0, "Year for the quarters; defaults to the year of the reference time")
	return "quarter", fset, cli.CmdFunc(c.run)
}

func (c *Quarter) Purpose() string {
	return "Prints the time ranges for quarters of a year"
}

func (c *Quarter) Description() string {
	return `
Command "quarter" prints the time ranges for the given quarters (Q1, Q2, Q3 or
Q4) of a year. All four quarters are printed when no quarters are given. The
year defaults to the year of the reference time.

    $ periods quarter -year 2005 Q1
`
}
