package tetris

import (
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Standard board dimensions.
const (
	Width  = 10
	Height = 20
)

// Grid is the board of settled blocks. A cell holds core.ColorNone when empty
// or the color of the piece that filled it. Dimensions are fixed at creation.
type Grid struct {
	width  int
	height int
	cells  [][]core.Color
}

// NewGrid returns an empty grid of the given size.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([][]core.Color, height)
	for y := range g.cells {
		g.cells[y] = make([]core.Color, width)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Cell returns the color at (x, y). Empty and out-of-range cells report
// core.ColorNone.
func (g *Grid) Cell(x, y int) core.Color {
	if !g.contains(x, y) {
		return core.ColorNone
	}
	return g.cells[y][x]
}

// Occupied reports whether (x, y) is inside the grid and filled.
func (g *Grid) Occupied(x, y int) bool {
	return g.Cell(x, y) != core.ColorNone
}

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CanPlacePiece reports whether every occupied cell of p, with its bounding
// box anchored at (x, y), lands inside the grid on an empty cell.
func (g *Grid) CanPlacePiece(p *Piece, x, y int) bool {
	for r, row := range p.cells {
		for c, filled := range row {
			if !filled {
				continue
			}
			gx, gy := x+c, y+r
			if !g.contains(gx, gy) || g.cells[gy][gx] != core.ColorNone {
				return false
			}
		}
	}
	return true
}

// PlacePiece writes p's color into the grid at (x, y). It does not check for
// collisions and overwrites whatever is there; call CanPlacePiece first.
// Cells that fall outside the grid are dropped.
func (g *Grid) PlacePiece(p *Piece, x, y int) {
	color := p.Color()
	for r, row := range p.cells {
		for c, filled := range row {
			if filled && g.contains(x+c, y+r) {
				g.cells[y+r][x+c] = color
			}
		}
	}
}

// CompletedLines returns the indices of full rows in ascending order.
func (g *Grid) CompletedLines() []int {
	var rows []int
	for y := range g.cells {
		if g.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

func (g *Grid) rowFull(y int) bool {
	for _, c := range g.cells[y] {
		if c == core.ColorNone {
			return false
		}
	}
	return true
}

// ClearLines removes the given rows and shifts everything above them down,
// inserting empty rows at the top so the height is unchanged. Rows may be in
// any order; duplicates and out-of-range indices are ignored. It returns the
// number of rows removed.
func (g *Grid) ClearLines(rows []int) int {
	if len(rows) == 0 {
		return 0
	}

	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < g.height {
			remove[y] = true
		}
	}
	if len(remove) == 0 {
		return 0
	}

	// Walk bottom-up, compacting kept rows toward the floor.
	dst := g.height - 1
	for src := g.height - 1; src >= 0; src-- {
		if remove[src] {
			continue
		}
		g.cells[dst] = g.cells[src]
		dst--
	}
	for ; dst >= 0; dst-- {
		g.cells[dst] = make([]core.Color, g.width)
	}
	return len(remove)
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c != core.ColorNone {
				n++
			}
		}
	}
	return n
}

// Rows returns a deep copy of the cell matrix, top row first.
func (g *Grid) Rows() [][]core.Color {
	out := make([][]core.Color, g.height)
	for y, row := range g.cells {
		out[y] = slices.Clone(row)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.Rows()}
}
