// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, key mapping and frame output; game rules
// live in the t2048 package.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/t2048"
)

// Session is the game surface the model drives.
type Session interface {
	t2048.View
	Step(a core.Action) t2048.StepResult
	Moves() int
}

// Options tune the terminal front end.
type Options struct {
	Color    bool
	ShowHelp bool
	Logger   *log.Logger // nil discards log output
}

// Model is the Bubble Tea model for a game session.
// The loop is turn-based: each key press is one step, there are no ticks.
type Model struct {
	game     Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	opts     Options
	logger   *log.Logger
	wasOver  bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(game Session, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   h,
		opts:   opts,
		logger: logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight(cfg.ScreenH))
	return m
}

// boardHeight leaves a line for the help footer when it is shown.
func (m Model) boardHeight(h int) int {
	if m.opts.ShowHelp {
		return h - 1
	}
	return h
}

// Init sets the window title; the first frame is drawn by View.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("2048")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey runs one game step for the pressed key.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	res := m.game.Step(action)
	m.logStep(res)

	if res.Status == t2048.StatusQuit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) logStep(res t2048.StepResult) {
	if res.Spawned != nil {
		m.logger.Debug("move",
			"action", res.Action,
			"spawn_row", res.Spawned.Row,
			"spawn_col", res.Spawned.Col,
			"spawn_value", res.Spawned.Value,
		)
	} else {
		m.logger.Debug("step", "action", res.Action, "changed", res.Changed)
	}

	switch {
	case res.Action == core.ActionQuit:
		m.logger.Info("quit", "moves", m.game.Moves())
	case res.Action == core.ActionRestart:
		m.logger.Info("restart")
	case res.Won:
		m.logger.Info("reached target", "target", t2048.Target, "moves", m.game.Moves())
	}

	over := m.game.IsOver()
	if over && !m.wasOver {
		m.logger.Info("no moves left", "max_tile", t2048.MaxTile(m.game.Board()), "moves", m.game.Moves())
	}
	m.wasOver = over
}

// handleResize resizes the screen buffer. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, m.boardHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	t2048.Render(m.screen, m.game)
	frame := RenderScreen(m.screen, m.opts.Color)

	if m.opts.ShowHelp {
		frame += "\n" + m.help.View(m.keys)
	}
	return frame
}

// Quitting reports whether the session has ended.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game Session, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
