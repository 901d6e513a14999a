package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
)

type stubView struct {
	board  Board
	status Status
}

func (v stubView) Board() Board   { return v.board }
func (v stubView) Status() Status { return v.status }
func (v stubView) IsOver() bool   { return IsOver(v.board) }

func TestRenderBoard(t *testing.T) {
	screen := core.NewScreen(80, 24)
	Render(screen, stubView{board: Board{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 2048, 0},
		{0, 0, 0, 16384},
	}})

	out := screen.String()
	for _, want := range []string{"2 0 4 8", Instructions, "128", "2048", "16384"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame should contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, WinBanner) || strings.Contains(out, LoseBanner) {
		t.Errorf("no banner expected on a playable board:\n%s", out)
	}

	// Numbers are right-aligned against the next border.
	boardX := (80 - boardW) / 2
	right := boardX + cellWidth - 1
	if screen.Get(right, boardTop+1) != '2' {
		t.Errorf("tile 2 should end at column %d, row:\n%q", right, screen.Row(boardTop+1))
	}
	if c := screen.GetCell(right, boardTop+1); c.Color != TileColor(2) {
		t.Errorf("tile color = %v, want %v", c.Color, TileColor(2))
	}
	if screen.Get(boardX, boardTop) != '┌' || screen.Get(boardX+boardW-1, boardTop+boardH-1) != '┘' {
		t.Error("grid corners missing")
	}
}

func TestRenderWinBanner(t *testing.T) {
	screen := core.NewScreen(80, 24)
	Render(screen, stubView{board: Board{{2048}}, status: StatusWon})

	if !strings.Contains(screen.String(), WinBanner) {
		t.Errorf("win banner missing:\n%s", screen.String())
	}
}

func TestRenderLoseBanner(t *testing.T) {
	lost := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	screen := core.NewScreen(80, 24)
	Render(screen, stubView{board: lost})
	if !strings.Contains(screen.String(), LoseBanner) {
		t.Errorf("lose banner missing:\n%s", screen.String())
	}

	// Win banner wins over lose banner.
	Render(screen, stubView{board: lost, status: StatusWon})
	out := screen.String()
	if !strings.Contains(out, WinBanner) || strings.Contains(out, LoseBanner) {
		t.Errorf("expected only the win banner:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	screen := core.NewScreen(20, 8)
	Render(screen, stubView{board: Board{{2}}})

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small notice:\n%s", screen.String())
	}
}

func TestRenderNarrowInstructions(t *testing.T) {
	screen := core.NewScreen(minWidth, minHeight)
	Render(screen, stubView{board: Board{{2}}})

	out := screen.String()
	if strings.Contains(out, "Window too small") {
		t.Fatalf("minimum size should render the board:\n%s", out)
	}
	if !strings.Contains(out, "R:reset") {
		t.Errorf("short instructions missing:\n%s", out)
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(0) != core.ColorDefault {
		t.Error("empty cell should use the default color")
	}
	if TileColor(Target) == TileColor(1024) {
		t.Error("target tile should stand out from 1024")
	}
	if TileColor(4096) != TileColor(8192) {
		t.Error("tiles above the target share a color")
	}
}
