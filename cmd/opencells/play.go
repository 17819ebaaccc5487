package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/opencells/internal/core"
	"github.com/vovakirdan/opencells/internal/level"
	"github.com/vovakirdan/opencells/internal/platform/tui"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Edit a level in this terminal",
	Long: `Open the hex editor. Move the mouse (or use the movement keys) to pick a
hex, then place or clear tiles.

Controls:
  1          - Clear the hex under the cursor
  2 / left   - Place an empty (counting) tile
  3 / right  - Place a marked tile
  middle     - Clear
  r          - Toggle start-revealed
  F2         - Fill the six neighbors with quiet empty tiles
  w e d s a q, Up/Down - Move one hex N NE SE S SW NW
  ?          - Full help
  Ctrl+S     - Save a text screenshot
  Esc/Ctrl+C - Quit

Examples:
  opencells play
  opencells play --level ./levels/demo.yaml
  opencells play --scale 6 --fps 60`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a YAML level to start from")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var seed *level.Level
	if flagLevel != "" {
		seed, err = level.LoadFile(flagLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("level loaded", "name", seed.Name, "cells", seed.Len())
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Warn("cannot read terminal size, using 80x24", "error", termErr)
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
		},
		Level: seed,
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
