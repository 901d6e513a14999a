package t2048

import (
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
)

const (
	cellWidth  = 6 // Columns per cell including the left border
	cellHeight = 2 // Rows per cell including the top border

	boardW = BoardSize*cellWidth + 1
	boardH = BoardSize*cellHeight + 1

	titleRow  = 0
	boardTop  = 2
	hintsGap  = 1
	minWidth  = boardW
	minHeight = boardTop + boardH + hintsGap + 1
)

// Instructions lists the controls shown under the board.
const Instructions = "W(UP),S(DOWN),A(LEFT),D(RIGHT),R(RESTART),Q(QUIT)"

// Banner texts.
const (
	WinBanner  = "YOU WIN, PRESS R TO CONTINUE"
	LoseBanner = "YOU LOSE, PRESS R TO CONTINUE"
)

// View is the read-only surface a renderer needs from a session.
type View interface {
	Board() Board
	Status() Status
	IsOver() bool
}

// Render draws a full frame for v into dst.
func Render(dst *core.Screen, v View) {
	dst.Clear()

	if dst.Width() < minWidth || dst.Height() < minHeight {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	area := core.NewRect(boardX, boardTop, boardW, boardH)

	dst.DrawTextCentered(titleRow, "2 0 4 8")
	renderGrid(dst, area)
	renderTiles(dst, area, v.Board())

	hintsY := area.Bottom() + hintsGap
	if len(Instructions) > dst.Width() {
		dst.DrawTextCentered(hintsY, "WASD:move R:reset Q:quit")
	} else {
		dst.DrawTextCentered(hintsY, Instructions)
	}

	switch {
	case v.Status() == StatusWon:
		drawBanner(dst, area, WinBanner, core.ColorBrightGreen)
	case v.IsOver():
		drawBanner(dst, area, LoseBanner, core.ColorBrightRed)
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderGrid draws the cell borders.
func renderGrid(dst *core.Screen, area core.Rect) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := area.X + x*cellWidth
			py := area.Y + y*cellHeight

			dst.SetCell(px, py, core.Cell{Rune: junction(x, y), Color: core.ColorGray})

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Color: core.ColorGray})
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Color: core.ColorGray})
				}
			}
		}
	}
}

func junction(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

// renderTiles draws the numbers right-aligned inside their cells.
func renderTiles(dst *core.Screen, area core.Rect, b Board) {
	for y := range BoardSize {
		for x := range BoardSize {
			val := b[y][x]
			if val == 0 {
				continue
			}
			right := area.X + (x+1)*cellWidth - 1
			row := area.Y + y*cellHeight + 1
			dst.DrawTextRight(right, row, strconv.Itoa(val), TileColor(val))
		}
	}
}

// TileColor picks the display color for a tile value.
func TileColor(v int) core.Color {
	switch v {
	case 0:
		return core.ColorDefault
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorYellow
	case 8:
		return core.ColorOrange
	case 16:
		return core.ColorRed
	case 32:
		return core.ColorBrightRed
	case 64:
		return core.ColorMagenta
	case 128:
		return core.ColorBrightMagenta
	case 256:
		return core.ColorBlue
	case 512:
		return core.ColorBrightBlue
	case 1024:
		return core.ColorCyan
	case Target:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightGreen
	}
}

// drawBanner draws a boxed one-line message over the middle of the board.
func drawBanner(dst *core.Screen, area core.Rect, text string, c core.Color) {
	box := area.Centered(len(text)+4, 3)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+2, box.Y+1, text, c)
}
