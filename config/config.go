// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to environment variables read as settings, ex: TYPOGENETICS_SEED
	EnvPrefix = "TYPOGENETICS"

	// DefaultIterations is the number of iterations a simulation runs for
	DefaultIterations = 100_000

	// DefaultDepth is the number of edits a search goes out from the initial strand
	DefaultDepth = 10

	// DefaultEdits is the number of edits a search tries per strand
	DefaultEdits = 10

	// DefaultTrials is the number of independent runs
	DefaultTrials = 1
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Iterations a simulation runs for
	Iterations int `mapstructure:"iter"`

	// Depth is how many edits away from the initial strand a search goes
	Depth int `mapstructure:"depth"`

	// Edits is the search branching factor
	Edits int `mapstructure:"edits"`

	// Seed for the random source. Zero means seed from the clock
	Seed int64 `mapstructure:"seed"`

	// Trials is the number of independent runs, seeded Seed, Seed+1, ...
	Trials int `mapstructure:"trials"`

	// PrintStrands lists every strand found, not just the count
	PrintStrands bool `mapstructure:"print-strands"`

	// Out is an optional report file (.json, .yaml)
	Out string `mapstructure:"out"`

	// Debug turns on debug logging
	Debug bool `mapstructure:"debug"`
}

// SetDefaults registers the default settings with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("iter", DefaultIterations)
	v.SetDefault("depth", DefaultDepth)
	v.SetDefault("edits", DefaultEdits)
	v.SetDefault("trials", DefaultTrials)
	v.SetDefault("seed", 0)
	v.SetDefault("print-strands", false)
	v.SetDefault("debug", false)
	v.SetDefault("out", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// ReadSettings merges a YAML (or JSON, TOML) settings file into v.
func ReadSettings(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return nil
}

// Commands with bounds to check in Validate.
const (
	Simulate = "simulate"
	Search   = "search"
)

// New returns a new Config struct populated by Viper settings,
// from a settings file, the environment and command line flags.
// Only the bounds the named command uses are validated.
func New(v *viper.Viper, command string) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	if err := c.Validate(command); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the bounds the command needs to terminate. Settings
// the command does not read are ignored.
func (c *Config) Validate(command string) error {
	switch command {
	case Simulate:
		if c.Iterations < 0 {
			return fmt.Errorf("iter must not be negative, got %d", c.Iterations)
		}
	case Search:
		if c.Depth < 0 {
			return fmt.Errorf("depth must not be negative, got %d", c.Depth)
		}
		if c.Edits < 1 {
			return fmt.Errorf("edits must be at least 1, got %d", c.Edits)
		}
	default:
		return nil
	}

	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	return nil
}
