// Package audio turns engine events into sound cues. A terminal has no mixer,
// so audible cues ring the bell and every cue is logged at debug level.
package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Cue is a named sound effect.
type Cue string

const (
	CueMove     Cue = "move"
	CueRotate   Cue = "rotate"
	CueDrop     Cue = "drop"
	CueClear    Cue = "clear"
	CueLevelUp  Cue = "levelup"
	CueGameOver Cue = "gameover"
)

// audible lists the cues loud enough to ring the bell. Moves and rotations
// fire on nearly every key press.
var audible = map[Cue]bool{
	CueDrop:     true,
	CueClear:    true,
	CueLevelUp:  true,
	CueGameOver: true,
}

// CueFor maps an engine event to its cue. ok is false for silent events.
func CueFor(e tetris.Event) (Cue, bool) {
	switch e.Type {
	case tetris.EventMove:
		// Gravity steps are silent; only player moves click.
		if e.Dir == tetris.DirDown {
			return "", false
		}
		return CueMove, true
	case tetris.EventRotate:
		return CueRotate, true
	case tetris.EventHardDrop:
		return CueDrop, true
	case tetris.EventLinesCleared:
		return CueClear, true
	case tetris.EventLevelUp:
		return CueLevelUp, true
	case tetris.EventGameOver:
		return CueGameOver, true
	default:
		return "", false
	}
}

// Options configures a Player.
type Options struct {
	Enabled bool
	Bell    bool
	// Out receives the bell character. Nil disables the bell.
	Out    io.Writer
	Logger *log.Logger
}

// Player plays cues for one session.
type Player struct {
	mu     sync.Mutex
	muted  bool
	bell   bool
	out    io.Writer
	logger *log.Logger
	played map[Cue]int
}

// NewPlayer creates a player. A disabled player starts muted and can be
// unmuted at runtime.
func NewPlayer(opts Options) *Player {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		muted:  !opts.Enabled,
		bell:   opts.Bell && opts.Out != nil,
		out:    opts.Out,
		logger: logger,
		played: make(map[Cue]int),
	}
}

// HandleEvent is a tetris.Listener.
func (p *Player) HandleEvent(e tetris.Event) {
	if cue, ok := CueFor(e); ok {
		p.Play(cue)
	}
}

// Play emits a cue unless muted.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}
	p.played[c]++
	p.logger.Debug("cue", "name", c)
	if p.bell && audible[c] {
		if _, err := io.WriteString(p.out, "\a"); err != nil {
			p.logger.Warn("bell write failed", "err", err)
		}
	}
}

// ToggleMute flips the mute flag and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	p.logger.Debug("mute toggled", "muted", p.muted)
	return p.muted
}

// Muted reports whether cues are suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played returns how many times c has been played since creation.
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}
