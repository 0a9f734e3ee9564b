// Package tetris is the falling-block rules engine: pieces, the settled-block
// grid, and the game state machine that ties them together.
//
// The engine is synchronous and does no timing of its own. A driver calls the
// movement operations on input and gravity ticks, calls FinishLineAnimation
// once its line-clear effect has played, and reads a Snapshot per frame.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	kindCount
)

// Kinds lists every piece kind in table order.
var Kinds = [kindCount]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

func (k Kind) String() string {
	if k.Valid() {
		return shapes[k].name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Color returns the fixed color for the kind.
func (k Kind) Color() core.Color {
	if !k.Valid() {
		return core.ColorNone
	}
	return shapes[k].color
}

type shapeDef struct {
	name  string
	color core.Color
	cells [][]uint8
}

// shapes is the single source of truth for spawn orientations and colors.
// Rows are listed top to bottom.
var shapes = [kindCount]shapeDef{
	KindI: {"I", core.ColorCyan, [][]uint8{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
	KindJ: {"J", core.ColorBlue, [][]uint8{
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	}},
	KindL: {"L", core.ColorOrange, [][]uint8{
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
	}},
	KindO: {"O", core.ColorYellow, [][]uint8{
		{1, 1},
		{1, 1},
	}},
	KindS: {"S", core.ColorGreen, [][]uint8{
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	}},
	KindT: {"T", core.ColorMagenta, [][]uint8{
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	}},
	KindZ: {"Z", core.ColorRed, [][]uint8{
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	}},
}

// Piece is a tetromino with its current orientation.
type Piece struct {
	kind     Kind
	cells    [][]bool
	rotation int
}

// NewPiece returns a piece of the given kind in its spawn orientation.
// It panics on an unknown kind.
func NewPiece(k Kind) *Piece {
	if !k.Valid() {
		panic(fmt.Sprintf("tetris: unknown piece kind %d", int(k)))
	}
	cells := newMatrix(len(shapes[k].cells))
	for r, row := range shapes[k].cells {
		for c, v := range row {
			cells[r][c] = v == 1
		}
	}
	return &Piece{kind: k, cells: cells}
}

func (p *Piece) Kind() Kind        { return p.kind }
func (p *Piece) Color() core.Color { return shapes[p.kind].color }

// Rotation returns the clockwise rotation from spawn: 0, 90, 180 or 270.
func (p *Piece) Rotation() int { return p.rotation }

// Size returns the side length of the piece's square bounding box.
func (p *Piece) Size() int { return len(p.cells) }

// Filled reports whether the cell at (row, col) of the bounding box is occupied.
func (p *Piece) Filled(row, col int) bool {
	if row < 0 || row >= len(p.cells) || col < 0 || col >= len(p.cells) {
		return false
	}
	return p.cells[row][col]
}

// Cells returns a copy of the occupancy matrix.
func (p *Piece) Cells() [][]bool {
	return copyMatrix(p.cells)
}

// Blocks returns the (col, row) offsets of the occupied cells, row-major.
func (p *Piece) Blocks() []Point {
	var pts []Point
	for r, row := range p.cells {
		for c, filled := range row {
			if filled {
				pts = append(pts, Point{X: c, Y: r})
			}
		}
	}
	return pts
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	return &Piece{kind: p.kind, cells: copyMatrix(p.cells), rotation: p.rotation}
}

// RotateClockwise turns the piece 90 degrees clockwise inside its bounding box.
// It does not check the grid; callers validate the new orientation.
func (p *Piece) RotateClockwise() {
	n := len(p.cells)
	out := newMatrix(n)
	for r := range n {
		for c := range n {
			out[c][n-1-r] = p.cells[r][c]
		}
	}
	p.cells = out
	p.rotation = (p.rotation + 90) % 360
}

// RotateCounterClockwise turns the piece 90 degrees counter-clockwise.
func (p *Piece) RotateCounterClockwise() {
	n := len(p.cells)
	out := newMatrix(n)
	for r := range n {
		for c := range n {
			out[n-1-c][r] = p.cells[r][c]
		}
	}
	p.cells = out
	p.rotation = (p.rotation + 270) % 360
}

// Point is a column/row pair.
type Point struct {
	X, Y int
}

func newMatrix(n int) [][]bool {
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	return m
}

func copyMatrix(src [][]bool) [][]bool {
	m := make([][]bool, len(src))
	for i, row := range src {
		m[i] = append([]bool(nil), row...)
	}
	return m
}
