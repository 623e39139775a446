// Copyright (c) 2025 BVK Chaitanya

// Package config holds the user settings for the periods tool.
//
// Settings are read from an optional YAML file and then overridden by
// environment variables with the PERIODS_ prefix (e.g., PERIODS_ZONE).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix for the environment variables.
const EnvPrefix = "PERIODS"

// EnvFileName is the name of the optional KEY=VALUE file that is loaded into
// the environment before the environment variables are processed. Keys in the
// file are written without the prefix (e.g., ZONE=UTC).
const EnvFileName = ".periods.env"

// ConfigFileEnv names the environment variable that overrides the settings
// file path.
const ConfigFileEnv = EnvPrefix + "_CONFIG"

// Formats lists the supported output formats.
var Formats = []string{"table", "json", "template"}

type Config struct {
	// Zone is the IANA time zone name for the reference times. Empty or
	// "Local" selects the system time zone.
	Zone string `yaml:"zone"`

	// Format is the default output format. Empty picks table on a terminal and
	// json otherwise.
	Format string `yaml:"format"`

	// LogDir if non-empty writes log files into this directory instead of
	// logging to the standard error.
	LogDir string `yaml:"log_dir" split_words:"true"`

	// Debug enables debug level log messages.
	Debug bool `yaml:"debug"`
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Zone: "Local",
	}
}

// DefaultPath returns the settings file path, which is taken from the
// PERIODS_CONFIG environment variable or else is "periods/config.yaml" under
// the user's configuration directory. Returns empty string when neither is
// available.
func DefaultPath() string {
	if v := os.Getenv(ConfigFileEnv); len(v) != 0 {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "periods", "config.yaml")
}

// Load returns the settings from the YAML file at fpath (if non-empty)
// overridden by the environment variables. A missing file is not an error.
func Load(fpath string) (*Config, error) {
	cfg := Default()
	if len(fpath) != 0 {
		data, err := os.ReadFile(fpath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("could not read config file: %w", err)
			}
		} else if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file %q: %w", fpath, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("could not process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if len(c.Format) != 0 && !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unsupported output format %q: %w", c.Format, os.ErrInvalid)
	}
	return nil
}

// Location returns the time zone for the reference times.
func (c *Config) Location() (*time.Location, error) {
	if len(c.Zone) == 0 || c.Zone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Zone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.Zone, errors.Join(os.ErrInvalid, err))
	}
	return loc, nil
}
