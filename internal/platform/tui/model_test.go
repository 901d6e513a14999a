package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/t2048"
)

func newTestModel(t *testing.T, opts Options) (Model, *t2048.Game) {
	t.Helper()
	game := t2048.NewSeeded(42)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}
	return NewModel(game, cfg, opts), game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelQuit(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, cmd := update(t, m, runeKey('Q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command produced %T, want tea.QuitMsg", cmd())
	}
	if !m.Quitting() {
		t.Error("model should be quitting")
	}
	if game.Status() != t2048.StatusQuit {
		t.Errorf("game status = %v, want quit", game.Status())
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m, game := newTestModel(t, Options{})
	before := game.Snapshot()

	m, cmd := update(t, m, runeKey('x'))
	if cmd != nil {
		t.Error("unbound key should not return a command")
	}
	if m.Quitting() || game.Snapshot() != before {
		t.Error("unbound key should not change the game")
	}
}

func TestModelMovesBoard(t *testing.T) {
	m, game := newTestModel(t, Options{})

	// Some direction always changes a fresh two-tile board.
	for _, r := range "wasd" {
		m, _ = update(t, m, runeKey(r))
	}
	if game.Moves() == 0 {
		t.Error("at least one move should have changed the board")
	}
	if m.Quitting() {
		t.Error("moves should not quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t, Options{})
	m, _ = update(t, m, runeKey('d'))
	before := game.Snapshot()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.Snapshot() != before {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewWithHelp(t *testing.T) {
	m, _ := newTestModel(t, Options{ShowHelp: true})

	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, want 23 with the help line", m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, t2048.Instructions) {
		t.Errorf("view should contain the instructions:\n%s", view)
	}
	if !strings.Contains(view, "restart") {
		t.Errorf("view should contain the help footer:\n%s", view)
	}
}

func TestModelViewPlain(t *testing.T) {
	m, game := newTestModel(t, Options{})

	view := m.View()
	screen := core.NewScreen(80, 24)
	t2048.Render(screen, game)
	if view != screen.String() {
		t.Error("colorless view should equal the plain screen text")
	}
}

func TestModelLogsSession(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	m, _ := newTestModel(t, Options{Logger: logger})
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, runeKey('a'))
	_, _ = update(t, m, runeKey('q'))

	out := buf.String()
	for _, want := range []string{"restart", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("log should contain %q:\n%s", want, out)
		}
	}
}

func TestRenderScreenColor(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColor(0, 0, "2048", core.ColorBrightYellow)

	plain := RenderScreen(s, false)
	if plain != "2048  " {
		t.Errorf("plain render = %q", plain)
	}

	colored := RenderScreen(s, true)
	if !strings.Contains(colored, "2048") {
		t.Errorf("colored render lost text: %q", colored)
	}
}
