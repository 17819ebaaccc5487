// opencells is a hex-grid minesweeper level editor for the terminal.
//
// Usage:
//
//	opencells play               - Edit a level locally
//	opencells serve              - Serve the editor over SSH
//	opencells ring               - Print ring/spiral coordinates
//	opencells pixel              - Resolve a pixel to its hex and nearest edge
//
// Global flags:
//
//	--config <path>     - Editor config YAML
//	--scale <size>      - Override the hex size in pixels
//	--fps <rate>        - Override the tick rate
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/opencells/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagScale    float64
	flagFPS      int
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "opencells",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "opencells",
	Short: "OpenCells - hex minesweeper level editor",
	Long: `OpenCells is a terminal editor for minesweeper-style levels laid out on a
flat-topped hexagonal grid. Empty cells show how many of their six
neighbors are marked.

Available commands:
  play   - Edit a level in this terminal
  serve  - Start SSH server for remote editing
  ring   - Print the hexes of a ring or spiral
  pixel  - Show which hex and edge a pixel falls on

Examples:
  opencells play
  opencells play --level ./levels/demo.yaml
  opencells serve --ssh :2222
  opencells ring --radius 2 --spiral
  opencells pixel --x 30 --y 12 --scale 8`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		lvl, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to editor config YAML")
	rootCmd.PersistentFlags().Float64Var(&flagScale, "scale", 0, "Hex size in pixels (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ringCmd)
	rootCmd.AddCommand(pixelCmd)
}

// loadConfig loads the editor config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagScale != 0 {
		cfg.Layout.Scale = flagScale
	}
	if flagFPS != 0 {
		cfg.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "scale", cfg.Layout.Scale, "tick_rate", cfg.TickRate)
	return cfg, nil
}
