// Copyright (c) 2025 BVK Chaitanya

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bvk/periods/config"
	"github.com/bvk/periods/envfile"
	"github.com/bvk/periods/subcmds"
	"github.com/bvk/periods/subcmds/cmdutil"
	"github.com/visvasity/cli"
	"github.com/visvasity/sglog"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if _, err := envfile.UpdateEnv(config.EnvFileName, envfile.SearchCurrentDir(true), envfile.VariableNamePrefix(config.EnvPrefix+"_")); err != nil {
		slog.Error("could not load env file", "name", config.EnvFileName, "err", err)
		return err
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		slog.Error("could not load settings", "err", err)
		return err
	}

	closef := setupLogging(cfg)
	defer closef()

	cmds := []cli.Command{
		new(subcmds.Show),
		new(subcmds.Quarter),
		new(subcmds.LastDays),
		new(subcmds.Contains),
		new(subcmds.Span),
		new(subcmds.Names),
	}

	ctx = cmdutil.WithConfig(ctx, cfg)
	if err := cli.Run(ctx, cmds, args); err != nil {
		slog.ErrorContext(ctx, "command failed", "args", args, "err", err)
		return err
	}
	return nil
}

// setupLogging installs the default slog logger for the settings. Returned
// function must be called before exit to flush the log files.
func setupLogging(cfg *config.Config) func() {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if len(cfg.LogDir) == 0 {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return func() {}
	}

	backend := sglog.NewBackend(&sglog.Options{
		LogDirs:       []string{cfg.LogDir},
		LogFileHeader: true,
	})
	backend.SetLevel(level)
	slog.SetDefault(slog.New(backend.Handler()))
	return backend.Close
}
