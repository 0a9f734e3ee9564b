package tetris

import (
	"slices"
	"time"
)

// lineClearPoints is the classic table of points per lock, indexed by the
// number of rows cleared at once.
var lineClearPoints = [...]int{0, 40, 100, 300, 1200}

// LinesPerLevel is how many cleared lines advance the level.
const LinesPerLevel = 10

// LinePoints returns the base points for clearing n rows at once, before the
// level multiplier. Counts outside 0..4 score nothing.
func LinePoints(n int) int {
	if n < 0 || n >= len(lineClearPoints) {
		return 0
	}
	return lineClearPoints[n]
}

// Game is the rules engine for one play session. It is not safe for
// concurrent use; the driver must serialize calls.
type Game struct {
	grid    *Grid
	current *Piece
	next    *Piece
	x, y    int

	score int
	level int
	lines int

	gameOver bool
	paused   bool

	animating      bool
	linesToAnimate []int

	rand      Randomizer
	listeners []Listener
}

// New creates a game and spawns its first piece. A nil randomizer selects a
// uniform one seeded from the clock.
func New(r Randomizer) *Game {
	if r == nil {
		r = NewUniform(time.Now().UnixNano())
	}
	g := &Game{rand: r}
	g.init()
	return g
}

func (g *Game) init() {
	g.grid = NewGrid(Width, Height)
	g.score = 0
	g.level = 1
	g.lines = 0
	g.gameOver = false
	g.paused = false
	g.animating = false
	g.linesToAnimate = nil
	g.next = g.generate()
	g.spawn()
}

// AddListener registers l for all future events.
func (g *Game) AddListener(l Listener) {
	if l != nil {
		g.listeners = append(g.listeners, l)
	}
}

func (g *Game) emit(e Event) {
	for _, l := range g.listeners {
		l(e)
	}
}

// Reset reinitializes the game in place: empty grid, fresh pieces, score 0,
// level 1, all flags cleared. Listeners and the randomizer are kept.
func (g *Game) Reset() {
	g.init()
	g.emit(Event{Type: EventReset})
}

// Restart is an alias for Reset.
func (g *Game) Restart() { g.Reset() }

// Grid returns the live board. Callers must treat it as read-only.
func (g *Game) Grid() *Grid { return g.grid }

// Current returns a copy of the falling piece.
func (g *Game) Current() *Piece { return g.current.Clone() }

// Next returns a copy of the preview piece.
func (g *Game) Next() *Piece { return g.next.Clone() }

// Position returns the top-left anchor of the current piece's bounding box.
func (g *Game) Position() (x, y int) { return g.x, g.y }

func (g *Game) Score() int             { return g.score }
func (g *Game) Level() int             { return g.level }
func (g *Game) Lines() int             { return g.lines }
func (g *Game) IsGameOver() bool       { return g.gameOver }
func (g *Game) IsPaused() bool         { return g.paused }
func (g *Game) IsAnimatingLines() bool { return g.animating }
func (g *Game) RandomizerName() string { return g.rand.Name() }
func (g *Game) LinesToAnimate() []int  { return slices.Clone(g.linesToAnimate) }
func (g *Game) FallFrames() int        { return GravityFrames(g.level) }

// TogglePause flips the pause flag. It works in every state, including game
// over, where it has no practical effect.
func (g *Game) TogglePause() {
	g.paused = !g.paused
	g.emit(Event{Type: EventPause, Paused: g.paused})
}

// frozen reports whether movement commands must be ignored.
func (g *Game) frozen() bool {
	return g.paused || g.gameOver || g.animating
}

func (g *Game) fits(dx, dy int) bool {
	return g.grid.CanPlacePiece(g.current, g.x+dx, g.y+dy)
}

// CanMoveLeft reports whether the current piece has room one column left.
func (g *Game) CanMoveLeft() bool { return g.fits(-1, 0) }

// CanMoveRight reports whether the current piece has room one column right.
func (g *Game) CanMoveRight() bool { return g.fits(1, 0) }

// CanMoveDown reports whether the current piece has room one row down.
func (g *Game) CanMoveDown() bool { return g.fits(0, 1) }

// MoveLeft shifts the piece one column left if there is room.
func (g *Game) MoveLeft() {
	if g.frozen() || !g.CanMoveLeft() {
		return
	}
	g.x--
	g.emit(Event{Type: EventMove, Dir: DirLeft})
}

// MoveRight shifts the piece one column right if there is room.
func (g *Game) MoveRight() {
	if g.frozen() || !g.CanMoveRight() {
		return
	}
	g.x++
	g.emit(Event{Type: EventMove, Dir: DirRight})
}

// MoveDown shifts the piece one row down, or locks it when it has landed.
func (g *Game) MoveDown() {
	if g.frozen() {
		return
	}
	if g.CanMoveDown() {
		g.y++
		g.emit(Event{Type: EventMove, Dir: DirDown})
		return
	}
	g.LockPiece()
}

// HardDrop drops the piece as far as it goes and locks it.
func (g *Game) HardDrop() {
	if g.frozen() {
		return
	}
	dist := 0
	for g.CanMoveDown() {
		g.y++
		dist++
	}
	g.emit(Event{Type: EventHardDrop, Distance: dist})
	g.LockPiece()
}

// RotateClockwise rotates the piece, kicking one column left or right if the
// new orientation collides.
func (g *Game) RotateClockwise() {
	g.rotate((*Piece).RotateClockwise)
}

// RotateCounterClockwise is the counter-clockwise twin of RotateClockwise.
func (g *Game) RotateCounterClockwise() {
	g.rotate((*Piece).RotateCounterClockwise)
}

func (g *Game) rotate(turn func(*Piece)) {
	if g.frozen() {
		return
	}
	original := g.current.Rotation()
	turn(g.current)

	switch {
	case g.fits(0, 0):
	case g.fits(-1, 0):
		g.x--
	case g.fits(1, 0):
		g.x++
	default:
		// Rebuild from the shape table rather than undoing the turn, so no
		// matrix is shared between attempts. Always replayed clockwise.
		restored := NewPiece(g.current.Kind())
		for range original / 90 {
			restored.RotateClockwise()
		}
		g.current = restored
		return
	}
	g.emit(Event{Type: EventRotate})
}

// LockPiece writes the current piece into the grid. Completed rows put the
// game into the line animation state, leaving them on the board until
// FinishLineAnimation; otherwise the next piece spawns immediately.
func (g *Game) LockPiece() {
	if g.frozen() {
		return
	}
	g.grid.PlacePiece(g.current, g.x, g.y)
	g.emit(Event{Type: EventLock, Kind: g.current.Kind()})

	rows := g.grid.CompletedLines()
	if len(rows) > 0 {
		g.animating = true
		g.linesToAnimate = rows
		g.emit(Event{Type: EventLinesCompleted, Rows: slices.Clone(rows)})
		return
	}
	g.spawn()
}

// FinishLineAnimation removes the rows recorded by the last lock, scores them
// and spawns the next piece. It does nothing unless lines are animating.
func (g *Game) FinishLineAnimation() {
	if !g.animating {
		return
	}
	cleared := g.grid.ClearLines(g.linesToAnimate)
	before := g.level
	points := g.updateScore(cleared)

	g.animating = false
	g.linesToAnimate = nil
	g.emit(Event{Type: EventLinesCleared, Lines: cleared, Points: points, Level: g.level})
	if g.level > before {
		g.emit(Event{Type: EventLevelUp, Level: g.level})
	}
	g.spawn()
}

// updateScore adds cleared rows to the running total, recomputes the level and
// awards points at the new level. It returns the points awarded.
func (g *Game) updateScore(cleared int) int {
	g.lines += cleared
	g.level = g.lines/LinesPerLevel + 1
	points := LinePoints(cleared) * g.level
	g.score += points
	return points
}

// spawn promotes the preview piece and centers it on the top row. When it
// does not fit the game is over; the piece stays current but never moves.
func (g *Game) spawn() {
	g.current = g.next
	g.next = g.generate()
	g.x = (g.grid.Width() - g.current.Size()) / 2
	g.y = 0

	if !g.fits(0, 0) {
		g.gameOver = true
		g.emit(Event{Type: EventGameOver})
		return
	}
	g.emit(Event{Type: EventSpawn, Kind: g.current.Kind()})
}

func (g *Game) generate() *Piece {
	return NewPiece(g.rand.Next())
}

// GravityFrames returns how many 60 Hz frames the piece waits per row at the
// given level, following the Game Boy speed curve.
func GravityFrames(level int) int {
	switch {
	case level <= 0:
		return 53
	case level <= 9:
		return 49 - 5*(level-1)
	case level <= 19:
		return 30 - 2*(level-10)
	case level <= 29:
		return 10 - (level - 20)
	default:
		return 1
	}
}
