// Package tui runs the hex editor in a terminal with Bubble Tea. It maps
// mouse and keyboard input onto the game input queue, drives the update
// tick and rasterizes the level into a character screen.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/opencells/internal/config"
	"github.com/vovakirdan/opencells/internal/core"
	"github.com/vovakirdan/opencells/internal/game"
	"github.com/vovakirdan/opencells/internal/hex"
	"github.com/vovakirdan/opencells/internal/level"
)

// TickMsg is sent to trigger one update of the editor state.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Options configure a new editor model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Level   *level.Level // Optional seed level
}

// Model is the Bubble Tea model for the hex editor.
type Model struct {
	state    *game.State
	input    *game.Input
	screen   *core.Screen
	viewport Viewport
	view     config.View
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a new editor model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Config.TickRate
	}

	st := game.NewState(opts.Config.Layout.Scale)
	if opts.Level != nil {
		st.Level = opts.Level
	}

	m := Model{
		state: st,
		input: &game.Input{},
		viewport: Viewport{
			CellW: opts.Config.Layout.CellWidth,
			CellH: opts.Config.Layout.CellHeight,
		},
		view:   opts.Config.View,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	m.input.Pointer = st.Offset // Start over hex (0,0)
	m.layout()
	return m
}

// footerHeight is the number of rows taken by the help view.
func (m Model) footerHeight() int {
	if !m.view.ShowHelp {
		return 0
	}
	return lipgloss.Height(m.help.View(m.keys))
}

// layout fits the grid above the footer and puts hex (0,0) in its middle.
// The pointer stays on the hex it was over.
func (m Model) layout() {
	here := hex.PixelToHex(m.input.Pointer.Sub(m.state.Offset), m.state.Scale)

	m.screen.Resize(max(m.config.ScreenW, 1), max(m.config.ScreenH-m.footerHeight(), 1))
	m.state.Offset = m.viewport.Center(m.screen.Width(), m.screen.Height())
	m.input.Pointer = m.state.PixelCenter(here)
}

// State exposes the editor state, mainly for tests.
func (m Model) State() *game.State {
	return m.state
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.state.Step(m.input)
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if action, ok := m.keys.Action(msg); ok {
		m.input.Push(action)
		return m, nil
	}

	if dir, ok := m.keys.Move(msg); ok {
		// Resolve from the pointer, not state.Cursor, so several moves
		// between ticks accumulate.
		here := hex.PixelToHex(m.input.Pointer.Sub(m.state.Offset), m.state.Scale)
		m.input.Pointer = m.state.PixelCenter(here.Neighbor(dir))
	}

	return m, nil
}

// handleMouse moves the pointer and queues button actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.input.Pointer = m.viewport.PixelAt(msg.X, msg.Y)
	if action, ok := MouseAction(msg); ok {
		m.input.Push(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// draw renders the grid and HUD into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	DrawGrid(m.screen, m.state, m.viewport, DrawOptions{ShowEdgeMarker: m.view.ShowEdgeMarker})

	if m.view.ShowCoords {
		title := "OpenCells"
		if m.state.Level.Name != "" {
			title += " - " + m.state.Level.Name
		}
		hud := fmt.Sprintf(" %s  cursor %v  cells %d ", title, m.state.Cursor, m.state.Level.Len())
		m.screen.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	}
	mistakes := " Mistakes: 0 "
	m.screen.DrawTextColored(m.screen.Width()-len(mistakes), 0, mistakes, core.ColorGray)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := config.DataDir("screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("opencells_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, editing continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	out := RenderScreen(m.screen)
	if m.view.ShowHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
