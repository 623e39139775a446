// Copyright (c) 2025 BVK Chaitanya

package cmdutil

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bvk/periods/config"
)

type configKey struct{}

// WithConfig returns a context that carries the user settings for the
// commands.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// Config returns the user settings from the context, or the defaults.
func Config(ctx context.Context) *config.Config {
	if v, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return v
	}
	return config.Default()
}

// RefFlags holds the reference time flags common to all period commands.
type RefFlags struct {
	at   string
	zone string
}

func (f *RefFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&f.at, "at", "", "Reference time (RFC3339, 2006-01-02, 1/2/2006 15:04:05.000 or a duration relative to now); defaults to now")
	fset.StringVar(&f.zone, "zone", "", "Time zone name for the reference time; defaults to the configured zone")
}

// Location returns the time zone selected by the -zone flag or the user
// settings.
func (f *RefFlags) Location(ctx context.Context) (*time.Location, error) {
	cfg := *Config(ctx)
	if len(f.zone) != 0 {
		cfg.Zone = f.zone
	}
	return cfg.Location()
}

// Reference returns the reference time in the selected time zone.
func (f *RefFlags) Reference(ctx context.Context) (time.Time, error) {
	zone, err := f.Location(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return ParseTime(f.at, time.Now(), zone)
}

var layouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006",
	"1/2/2006 15:04:05.000",
}

// ParseTime parses s as a time in the given zone. An empty string is the now
// time. A Go duration (e.g., -48h) is relative to now.
func ParseTime(s string, now time.Time, zone *time.Location) (time.Time, error) {
	now = now.In(zone)
	if len(s) == 0 {
		return now, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(d), nil
	}
	if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return v.In(zone), nil
	}
	for _, layout := range layouts {
		if v, err := time.ParseInLocation(layout, s, zone); err == nil {
			return v, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse time %q: %w", s, os.ErrInvalid)
}
