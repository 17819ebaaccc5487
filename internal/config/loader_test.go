package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "layout:\n  scale: 6\ntick_rate: 20\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Layout.Scale != 6 {
		t.Errorf("Scale = %v, expected 6", cfg.Layout.Scale)
	}
	if cfg.TickRate != 20 {
		t.Errorf("TickRate = %d, expected 20", cfg.TickRate)
	}
	// Unset fields keep defaults.
	if cfg.Layout.CellHeight != 2 {
		t.Errorf("CellHeight = %v, expected default 2", cfg.Layout.CellHeight)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("layout: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed config error = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("layout:\n  scale: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "layout.scale") {
		t.Errorf("invalid config error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero scale", func(c *Config) { c.Layout.Scale = 0 }, "layout.scale"},
		{"zero cell width", func(c *Config) { c.Layout.CellWidth = 0 }, "layout.cell_width"},
		{"negative cell height", func(c *Config) { c.Layout.CellHeight = -2 }, "layout.cell_height"},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, "tick_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected mention of %s", err, tc.want)
			}
		})
	}
}
