// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bvk/periods/subcmds/cmdutil"
	"github.com/bvk/periods/timerange"
	"github.com/visvasity/cli"
)

type Span struct {
	cmdutil.RefFlags
	cmdutil.OutputFlags
}

func (c *Span) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("this command takes one or more period names: %w", os.ErrInvalid)
	}
	at, err := c.RefFlags.Reference(ctx)
	if err != nil {
		return err
	}

	span := new(timerange.Range)
	for _, name := range args {
		r, err := timerange.Named(name, at)
		if err != nil {
			return fmt.Errorf("could not compute period %q: %w", name, err)
		}
		span = timerange.Union(span, r)
	}
	row := cmdutil.NewRow(strings.Join(args, "+"), span)
	return c.OutputFlags.Print(ctx, []*cmdutil.Row{row})
}

func (c *Span) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("span", flag.ContinueOnError)
	c.RefFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "span", fset, cli.CmdFunc(c.run)
}

func (c *Span) Purpose() string {
	return "Prints the smallest time range covering all named periods"
}
