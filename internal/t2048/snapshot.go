package t2048

// GameStateType is the externally visible state, including the derived Lost.
type GameStateType string

const (
	StatePlaying GameStateType = "normal"
	StateWon     GameStateType = "won"
	StateLost    GameStateType = "lost"
	StateQuit    GameStateType = "quit"
)

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Moves   int
	Board   Board
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current session snapshot.
// Won takes precedence over Lost, matching the on-screen banner.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.status == StatusQuit:
		state = StateQuit
	case g.status == StatusWon:
		state = StateWon
	case g.IsOver():
		state = StateLost
	}

	return Snapshot{
		Moves:   g.moves,
		Board:   g.board,
		MaxTile: MaxTile(g.board),
		State:   state,
	}
}
