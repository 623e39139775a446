// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/periods/timerange"
	"github.com/visvasity/cli"
)

type Names struct{}

func (c *Names) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	for _, name := range timerange.Names() {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

func (c *Names) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("names", flag.ContinueOnError)
	return "names", fset, cli.CmdFunc(c.run)
}

func (c *Names) Purpose() string {
	return "Lists the well-known period names (any last-N-days is also accepted)"
}
