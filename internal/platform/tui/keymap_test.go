package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"W", runeKey('W'), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"A", runeKey('A'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"r", runeKey('r'), core.ActionRestart},
		{"R", runeKey('R'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"Q", runeKey('Q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", runeKey('x'), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%s) = %v, want %v", tc.msg, got, tc.expected)
			}
		})
	}
}

// Letter bindings must agree with the rune mapping used by scripted input.
func TestKeyMapAgreesWithRuneMapping(t *testing.T) {
	km := DefaultKeyMap()

	for _, r := range "wasdrqWASDRQxyz1 " {
		if got, want := km.Action(runeKey(r)), core.ActionFromRune(r); got != want {
			t.Errorf("key %q: keymap %v, rune mapping %v", r, got, want)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if n := len(km.ShortHelp()); n != 6 {
		t.Errorf("ShortHelp has %d bindings, want 6", n)
	}
	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	if total != 6 {
		t.Errorf("FullHelp has %d bindings, want 6", total)
	}
}
