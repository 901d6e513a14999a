// Package t2048 implements the 2048 sliding-tile puzzle: the board engine
// (rotation, compact-and-merge, spawning, game-over detection) and the game
// controller that drives it from semantic input actions.
package t2048

import "fmt"

// BoardSize is the board dimension.
const BoardSize = 4

// Target is the tile value that wins the game.
const Target = 2048

// Board is a 4x4 grid indexed [row][col]. Zero means empty.
type Board [BoardSize][BoardSize]int

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// rotations returns how many quarter turns align d with "left".
func (d Direction) rotations() int {
	switch d {
	case DirUp:
		return 1
	case DirRight:
		return 2
	case DirDown:
		return 3
	default:
		return 0
	}
}

// MergeResult is the outcome of a compaction pass.
type MergeResult struct {
	Board   Board
	Changed bool // Any cell differs from the input board
	Won     bool // A merge in this pass produced the Target tile
}

// Rotate returns b turned a quarter turn counter-clockwise:
// the value at (i, j) moves to (N-1-j, i).
func Rotate(b Board) Board {
	var out Board
	for i := range BoardSize {
		for j := range BoardSize {
			out[BoardSize-1-j][i] = b[i][j]
		}
	}
	return out
}

// RotateN applies Rotate n times (mod 4).
func RotateN(b Board, n int) Board {
	n = ((n % 4) + 4) % 4
	for range n {
		b = Rotate(b)
	}
	return b
}

// compactRow slides one row to the left, merging at most one pair per tile.
// The pending slot is cleared after a merge, so [2,2,2,0] becomes [4,2,0,0].
func compactRow(row [BoardSize]int) (out [BoardSize]int, won bool) {
	pending := 0
	writePos := 0

	for _, v := range row {
		if v == 0 {
			continue
		}
		if pending == 0 {
			pending = v
			continue
		}

		if pending == v {
			out[writePos] = pending * 2
			if out[writePos] == Target {
				won = true
			}
			pending = 0
		} else {
			out[writePos] = pending
			pending = v
		}
		writePos++
	}

	if pending != 0 {
		out[writePos] = pending
	}

	return out, won
}

// CompactMergeLeft slides and merges every row toward column 0.
func CompactMergeLeft(b Board) MergeResult {
	res := MergeResult{}
	for y := range BoardSize {
		row, won := compactRow(b[y])
		res.Board[y] = row
		res.Won = res.Won || won
	}
	res.Changed = res.Board != b
	return res
}

// ApplyMove performs a move in any direction by rotating the board so the
// direction points left, compacting, and rotating back.
func ApplyMove(b Board, dir Direction) MergeResult {
	k := dir.rotations()
	res := CompactMergeLeft(RotateN(b, k))
	res.Board = RotateN(res.Board, 4-k)
	return res
}

// Tile is a positioned tile value.
type Tile struct {
	Row, Col int
	Value    int
}

// Rand is the random source used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// EmptyCells returns the positions of all empty cells in row-major order.
func EmptyCells(b Board) []Tile {
	var cells []Tile
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == 0 {
				cells = append(cells, Tile{Row: y, Col: x})
			}
		}
	}
	return cells
}

// SpawnRandomTile places a 2 (9 in 10) or a 4 (1 in 10) on a uniformly
// chosen empty cell and returns it.
// The board must have at least one empty cell; a full board panics.
func SpawnRandomTile(b *Board, rng Rand) Tile {
	empty := EmptyCells(*b)
	if len(empty) == 0 {
		panic("t2048: spawn on a full board")
	}

	t := empty[rng.Intn(len(empty))]
	t.Value = 2
	if rng.Intn(10) == 1 {
		t.Value = 4
	}

	b[t.Row][t.Col] = t.Value
	return t
}

// IsOver reports whether no move can change the board:
// no empty cell and no equal right or bottom neighbours.
func IsOver(b Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			v := b[y][x]
			if v == 0 {
				return false
			}
			if x+1 < BoardSize && b[y][x+1] == v {
				return false
			}
			if y+1 < BoardSize && b[y+1][x] == v {
				return false
			}
		}
	}
	return true
}

// MaxTile returns the highest tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			maxVal = max(maxVal, b[y][x])
		}
	}
	return maxVal
}

// TileCount returns the number of occupied cells.
func TileCount(b Board) int {
	return BoardSize*BoardSize - len(EmptyCells(b))
}
