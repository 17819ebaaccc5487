// Package config provides YAML-based configuration loading for the editor.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the hex editor.
type Config struct {
	Layout   Layout `yaml:"layout"`
	TickRate int    `yaml:"tick_rate"`
	View     View   `yaml:"view"`
}

// Layout maps terminal characters to the pixel space the hex math runs in.
type Layout struct {
	Scale      float64 `yaml:"scale"`       // Hex size in pixels
	CellWidth  float64 `yaml:"cell_width"`  // Pixels per terminal column
	CellHeight float64 `yaml:"cell_height"` // Pixels per terminal row
}

// View toggles optional overlays.
type View struct {
	ShowEdgeMarker bool `yaml:"show_edge_marker"`
	ShowCoords     bool `yaml:"show_coords"`
	ShowHelp       bool `yaml:"show_help"`
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Layout.Scale <= 0 {
		errs = append(errs, fmt.Errorf("layout.scale must be positive, got %v", c.Layout.Scale))
	}
	if c.Layout.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("layout.cell_width must be positive, got %v", c.Layout.CellWidth))
	}
	if c.Layout.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("layout.cell_height must be positive, got %v", c.Layout.CellHeight))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	return errors.Join(errs...)
}
