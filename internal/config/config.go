package config

import (
	"errors"
	"fmt"
	"os"

	"torus-life/internal/core"
	"torus-life/internal/life"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle = "Life"
	DefaultSeed  = 42
)

// Config holds the runtime settings shared by every frontend.
type Config struct {
	Pattern string `yaml:"pattern"`
	// Rate is the number of generations per second.
	Rate    int    `yaml:"rate"`
	Seed    int64  `yaml:"seed"`
	Editing bool   `yaml:"editing"`
	Paused  bool   `yaml:"paused"`
	Title   string `yaml:"title"`
}

// Default returns a Config populated with the stock settings.
func Default() *Config {
	return &Config{
		Pattern: life.DefaultPattern,
		Rate:    core.DefaultRate,
		Seed:    DefaultSeed,
		Title:   DefaultTitle,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.BoolVar(&c.Editing, "edit", c.Editing, "start in edit mode")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
}

// Overlay loads the YAML file at path and then reapplies every flag the user
// set explicitly in fs, so the command line wins over the file.
func (c *Config) Overlay(path string, fs *pflag.FlagSet) error {
	set := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = f.Value.String()
	})
	if err := c.LoadFile(path); err != nil {
		return err
	}
	for name, value := range set {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply --%s: %w", name, err)
		}
	}
	return nil
}

// Validate reports settings that cannot be run.
func (c *Config) Validate() error {
	var errs []error
	if c.Rate <= 0 {
		errs = append(errs, fmt.Errorf("rate must be positive, got %d", c.Rate))
	}
	if _, err := life.Lookup(c.Pattern, c.Seed); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// StartPattern resolves the configured starting pattern.
func (c *Config) StartPattern() (life.Pattern, error) {
	return life.Lookup(c.Pattern, c.Seed)
}
