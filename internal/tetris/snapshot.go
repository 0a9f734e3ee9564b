package tetris

import "slices"

// State names the effective mode of the state machine.
type State string

const (
	StateActive    State = "active"
	StatePaused    State = "paused"
	StateAnimating State = "animating"
	StateGameOver  State = "game_over"
)

// Snapshot is a deep copy of everything a renderer or UI shell needs for one
// frame. It shares no memory with the game.
type Snapshot struct {
	Grid    *Grid
	Current *Piece
	Next    *Piece
	X, Y    int

	Score int
	Level int
	Lines int

	State          State
	GameOver       bool
	Paused         bool
	Animating      bool
	LinesToAnimate []int
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:           g.grid.Clone(),
		Current:        g.current.Clone(),
		Next:           g.next.Clone(),
		X:              g.x,
		Y:              g.y,
		Score:          g.score,
		Level:          g.level,
		Lines:          g.lines,
		State:          g.State(),
		GameOver:       g.gameOver,
		Paused:         g.paused,
		Animating:      g.animating,
		LinesToAnimate: slices.Clone(g.linesToAnimate),
	}
}

// State reports the effective state. Game over wins over pause, and pause
// wins over a pending line animation.
func (g *Game) State() State {
	switch {
	case g.gameOver:
		return StateGameOver
	case g.paused:
		return StatePaused
	case g.animating:
		return StateAnimating
	default:
		return StateActive
	}
}

// GhostY returns the row the current piece would land on if dropped now.
func (s Snapshot) GhostY() int {
	y := s.Y
	for s.Grid.CanPlacePiece(s.Current, s.X, y+1) {
		y++
	}
	return y
}
