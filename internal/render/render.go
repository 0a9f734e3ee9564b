// Package render draws a game snapshot into a core.Screen. It knows nothing
// about terminals; the platform layer turns the screen into styled text.
package render

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Each board cell is two characters wide so blocks look square.
const cellW = 2

const (
	boardW = tetris.Width*cellW + 2
	boardH = tetris.Height + 2
	gap    = 2
	sideW  = 16

	// MinWidth and MinHeight are the smallest screen the layout fits in.
	MinWidth  = boardW + gap + sideW
	MinHeight = boardH
)

const (
	blockGlyph = "██"
	ghostGlyph = "░░"
	emptyGlyph = " ·"
)

// View is everything drawn in one frame.
type View struct {
	Snap  tetris.Snapshot
	Ghost bool
	// FlashOn is the visible phase of the line-clear flash.
	FlashOn bool
	Muted   bool
	Best    int
	Mode    string
}

// Draw clears dst and paints the whole frame.
func Draw(dst *core.Screen, v View) {
	dst.Clear()
	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		drawTooSmall(dst)
		return
	}

	ox := (dst.Width() - MinWidth) / 2
	oy := (dst.Height() - MinHeight) / 2
	board := core.Rect{X: ox, Y: oy, W: boardW, H: boardH}

	drawBoard(dst, board, v)
	drawSide(dst, core.Rect{X: board.Right() + gap, Y: oy, W: sideW, H: boardH}, v)

	switch v.Snap.State {
	case tetris.StateGameOver:
		drawOverlay(dst, board, core.ColorRed, "GAME OVER",
			fmt.Sprintf("Score %d", v.Snap.Score), "Enter: restart")
	case tetris.StatePaused:
		drawOverlay(dst, board, core.ColorYellow, "PAUSED", "", "P: resume")
	}
}

func drawTooSmall(dst *core.Screen) {
	full := core.Rect{W: dst.Width(), H: dst.Height()}
	mid := dst.Height() / 2
	dst.DrawTextCentered(full, mid-1, "Terminal too small", core.ColorYellow)
	dst.DrawTextCentered(full, mid, fmt.Sprintf("need %dx%d, have %dx%d",
		MinWidth, MinHeight, dst.Width(), dst.Height()), core.ColorGray)
}

// cellPos maps a board cell to its screen position inside the border.
func cellPos(board core.Rect, x, y int) (int, int) {
	return board.X + 1 + x*cellW, board.Y + 1 + y
}

func drawBoard(dst *core.Screen, board core.Rect, v View) {
	s := v.Snap
	dst.DrawBox(board, core.ColorGray)

	for y := range s.Grid.Height() {
		flashing := s.Animating && slices.Contains(s.LinesToAnimate, y)
		for x := range s.Grid.Width() {
			sx, sy := cellPos(board, x, y)
			switch c := s.Grid.Cell(x, y); {
			case flashing && v.FlashOn:
				dst.DrawText(sx, sy, blockGlyph, core.ColorWhite)
			case flashing:
				dst.DrawText(sx, sy, emptyGlyph, core.ColorDim)
			case c != core.ColorNone:
				dst.DrawText(sx, sy, blockGlyph, c)
			default:
				dst.DrawText(sx, sy, emptyGlyph, core.ColorDim)
			}
		}
	}

	// While rows flash the piece is already part of the grid.
	if s.Animating || s.Current == nil {
		return
	}
	if v.Ghost && !s.GameOver {
		if gy := s.GhostY(); gy != s.Y {
			drawPiece(dst, board, s.Current, s.X, gy, ghostGlyph)
		}
	}
	drawPiece(dst, board, s.Current, s.X, s.Y, blockGlyph)
}

// drawPiece paints p with its top-left box corner at board cell (x, y),
// skipping blocks outside the board.
func drawPiece(dst *core.Screen, board core.Rect, p *tetris.Piece, x, y int, glyph string) {
	for _, b := range p.Blocks() {
		bx, by := x+b.X, y+b.Y
		if bx < 0 || bx >= tetris.Width || by < 0 || by >= tetris.Height {
			continue
		}
		sx, sy := cellPos(board, bx, by)
		dst.DrawText(sx, sy, glyph, p.Color())
	}
}

func drawSide(dst *core.Screen, r core.Rect, v View) {
	s := v.Snap
	y := r.Y

	dst.DrawText(r.X, y, "NEXT", core.ColorWhite)
	preview := core.Rect{X: r.X, Y: y + 1, W: 4*cellW + 2, H: 6}
	dst.DrawBox(preview, core.ColorGray)
	if s.Next != nil {
		// Center smaller pieces in the 4x4 preview area.
		off := (4 - s.Next.Size()) / 2
		for _, b := range s.Next.Blocks() {
			dst.DrawText(preview.X+1+(b.X+off)*cellW, preview.Y+1+b.Y+off, blockGlyph, s.Next.Color())
		}
	}
	y = preview.Bottom() + 1

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", s.Score},
		{"LEVEL", s.Level},
		{"LINES", s.Lines},
		{"BEST", max(v.Best, s.Score)},
	}
	for _, st := range stats {
		dst.DrawText(r.X, y, st.label, core.ColorGray)
		dst.DrawText(r.X, y+1, fmt.Sprintf("%d", st.value), core.ColorWhite)
		y += 3
	}

	if v.Mode != "" {
		dst.DrawText(r.X, y, "mode "+v.Mode, core.ColorDim)
		y++
	}
	if v.Muted {
		dst.DrawText(r.X, y, "sound off", core.ColorDim)
	}
}

func drawOverlay(dst *core.Screen, board core.Rect, c core.Color, title, detail, hint string) {
	box := core.Rect{X: board.X + 1, Y: board.Y + board.H/2 - 3, W: board.W - 2, H: 6}
	dst.FillRect(box, ' ', core.ColorNone)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box, box.Y+1, title, c)
	if detail != "" {
		dst.DrawTextCentered(box, box.Y+2, detail, core.ColorWhite)
	}
	dst.DrawTextCentered(box, box.Y+4, hint, core.ColorGray)
}
