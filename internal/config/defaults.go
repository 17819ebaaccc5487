package config

import (
	_ "embed"
)

//go:embed defaults/opencells.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() Config {
	return Config{
		Layout: Layout{
			Scale:      4.0,
			CellWidth:  1.0,
			CellHeight: 2.0,
		},
		TickRate: 30,
		View: View{
			ShowEdgeMarker: true,
			ShowCoords:     true,
			ShowHelp:       true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
