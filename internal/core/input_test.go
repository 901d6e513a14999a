package core

import "testing"

func TestActionFromRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected Action
	}{
		{'w', ActionUp},
		{'W', ActionUp},
		{'a', ActionLeft},
		{'A', ActionLeft},
		{'s', ActionDown},
		{'S', ActionDown},
		{'d', ActionRight},
		{'D', ActionRight},
		{'r', ActionRestart},
		{'R', ActionRestart},
		{'q', ActionQuit},
		{'Q', ActionQuit},
		{'x', ActionNone},
		{' ', ActionNone},
		{'1', ActionNone},
		{'[', ActionNone},
	}

	for _, tc := range tests {
		if got := ActionFromRune(tc.r); got != tc.expected {
			t.Errorf("ActionFromRune(%q) = %v, expected %v", tc.r, got, tc.expected)
		}
	}
}

func TestActionsFromString(t *testing.T) {
	got := ActionsFromString("wA x?Dq")
	expected := []Action{ActionUp, ActionLeft, ActionRight, ActionQuit}

	if len(got) != len(expected) {
		t.Fatalf("ActionsFromString length = %d, expected %d (%v)", len(got), len(expected), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("action %d = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestActionIsDirectional(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirectional() {
			t.Errorf("%v should be directional", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionRestart, ActionQuit} {
		if a.IsDirectional() {
			t.Errorf("%v should not be directional", a)
		}
	}
}
