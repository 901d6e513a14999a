package t2048

import (
	"math/rand"

	"github.com/vovakirdan/term2048/internal/core"
)

// Status is the persisted part of the game state machine.
// Lost is not a status: it is derived from the board via IsOver.
type Status int

const (
	StatusNormal Status = iota
	StatusWon
	StatusQuit
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusWon:
		return "won"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// StepResult describes what a single action did to the session.
type StepResult struct {
	Action  core.Action
	Changed bool  // The board moved
	Spawned *Tile // Tile added after a changing move
	Won     bool  // This step moved the session from Normal to Won
	Status  Status
}

// Game is a single 2048 session: the board, the status, and the random
// source used for spawning. It is not safe for concurrent use.
type Game struct {
	rng    Rand
	board  Board
	status Status
	moves  int
}

// New creates a session with two tiles on an otherwise empty board.
func New(rng Rand) *Game {
	g := &Game{rng: rng}
	g.Restart()
	return g
}

// NewSeeded creates a session backed by a math/rand source with the given seed.
func NewSeeded(seed int64) *Game {
	return New(rand.New(rand.NewSource(seed)))
}

// Restart clears the board, spawns two tiles and returns to Normal.
func (g *Game) Restart() {
	g.board = Board{}
	g.status = StatusNormal
	g.moves = 0
	SpawnRandomTile(&g.board, g.rng)
	SpawnRandomTile(&g.board, g.rng)
}

// Board returns a copy of the current grid.
func (g *Game) Board() Board {
	return g.board
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// IsOver reports whether no move is left on the current board.
func (g *Game) IsOver() bool {
	return IsOver(g.board)
}

// Moves returns the number of board-changing moves since the last restart.
func (g *Game) Moves() int {
	return g.moves
}

// Step processes one input action.
func (g *Game) Step(a core.Action) StepResult {
	res := StepResult{Action: a}

	switch {
	case g.status == StatusQuit:
	case a == core.ActionQuit:
		g.status = StatusQuit
	case a == core.ActionRestart:
		g.Restart()
	case a.IsDirectional():
		g.move(directionFor(a), &res)
	}

	res.Status = g.status
	return res
}

// move applies a slide. Won sessions keep playing; the Won status stays
// latched until restart.
func (g *Game) move(dir Direction, res *StepResult) {
	merged := ApplyMove(g.board, dir)
	if !merged.Changed {
		return
	}

	g.board = merged.Board
	g.moves++
	res.Changed = true

	if merged.Won && g.status == StatusNormal {
		g.status = StatusWon
		res.Won = true
	}

	// A changing move never leaves a full board: either a tile slid into a
	// gap or a merge freed a cell.
	t := SpawnRandomTile(&g.board, g.rng)
	res.Spawned = &t
}

func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionRight:
		return DirRight
	default:
		return DirLeft
	}
}
