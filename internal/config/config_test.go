package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"torus-life/internal/life"

	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Pattern != life.DefaultPattern {
		t.Errorf("expected pattern %s, got %s", life.DefaultPattern, cfg.Pattern)
	}
	if cfg.Rate != 8 {
		t.Errorf("expected rate 8, got %d", cfg.Rate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	data := "pattern: random\nrate: 20\nseed: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Pattern != "random" || cfg.Rate != 20 || cfg.Seed != 7 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("unset keys should keep defaults, title = %q", cfg.Title)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rate: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero rate", func(c *Config) { c.Rate = 0 }, nil},
		{"negative rate", func(c *Config) { c.Rate = -3 }, nil},
		{"unknown pattern", func(c *Config) { c.Pattern = "nope" }, life.ErrUnknownPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBindOverridesFile(t *testing.T) {
	cfg := Default()
	cfg.Rate = 20

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"--pattern", "block", "--edit"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Pattern != "block" || !cfg.Editing {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Rate != 20 {
		t.Errorf("unset flag clobbered rate: %d", cfg.Rate)
	}
}

func TestOverlayPrefersFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte("pattern: blinker\nrate: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"--rate", "12"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Overlay(path, fs); err != nil {
		t.Fatalf("overlay failed: %v", err)
	}
	if cfg.Pattern != "blinker" {
		t.Errorf("file value lost, pattern = %q", cfg.Pattern)
	}
	if cfg.Rate != 12 {
		t.Errorf("flag should win over file, rate = %d", cfg.Rate)
	}
}
