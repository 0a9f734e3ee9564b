// Package session drives one tetris game at a fixed tick rate. The engine
// does no timing of its own; the session owns the gravity and line-clear
// timers, maps platform actions onto engine commands and paints frames.
package session

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/render"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// ID is the identifier used for score storage and logs.
const ID = "tetris"

// flashSteps is how many times completed rows toggle while they flash.
const flashSteps = 10

// Options configures a Session.
type Options struct {
	Config config.TetrisConfig
	Logger *log.Logger
	// Audio receives engine events. Nil plays nothing.
	Audio *audio.Player
	// Randomizer overrides the configured piece policy.
	Randomizer tetris.Randomizer
}

// Session runs one game for one player.
type Session struct {
	cfg    config.TetrisConfig
	rt     core.RuntimeConfig
	logger *log.Logger
	audio  *audio.Player
	rand   tetris.Randomizer

	game  *tetris.Game
	runID string
	ghost bool
	best  int

	gravityTicks int // ticks since the last gravity step
	clearTicks   int // ticks spent flashing the current completed rows
	dirty        bool
}

// New creates a session. Call Reset before the first Step.
func New(opts Options) *Session {
	cfg := opts.Config
	cfg.Normalize()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		cfg:    cfg,
		logger: logger,
		audio:  opts.Audio,
		rand:   opts.Randomizer,
		ghost:  cfg.Display.Ghost,
	}
}

// ID returns the storage identifier.
func (s *Session) ID() string { return ID }

// Title returns the display name.
func (s *Session) Title() string { return "Tetris" }

// Reset starts a brand new game with a fresh randomizer.
func (s *Session) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = s.cfg.Timing.TickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	s.rt = rt

	r := s.rand
	if r == nil {
		r = tetris.NewRandomizer(s.cfg.Randomizer, rt.Seed)
	}
	s.game = tetris.New(r)
	s.game.AddListener(s.onEvent)
	if s.audio != nil {
		s.game.AddListener(s.audio.HandleEvent)
	}
	s.newRun()
	s.logger.Info("game started", "run", s.runID, "mode", s.Mode(), "seed", rt.Seed, "tick_rate", rt.TickRate)
}

// restart reuses the game in place after a game over.
func (s *Session) restart() {
	s.game.Restart()
	s.newRun()
	s.logger.Info("game restarted", "run", s.runID)
}

func (s *Session) newRun() {
	s.runID = uuid.NewString()
	s.gravityTicks = 0
	s.clearTicks = 0
	s.dirty = true
}

func (s *Session) onEvent(e tetris.Event) {
	s.dirty = true
	switch e.Type {
	case tetris.EventLinesCleared:
		s.logger.Debug("lines cleared", "lines", e.Lines, "points", e.Points, "level", e.Level)
	case tetris.EventLevelUp:
		s.logger.Info("level up", "run", s.runID, "level", e.Level)
	case tetris.EventGameOver:
		s.logger.Info("game over", "run", s.runID,
			"score", s.game.Score(), "lines", s.game.Lines(), "level", s.game.Level())
	}
}

// Step advances the session by one tick: input first, then timers.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.dirty = false

	for _, a := range in.Actions() {
		s.apply(a)
	}

	switch {
	case s.game.IsPaused() || s.game.IsGameOver():
	case s.game.IsAnimatingLines():
		s.clearTicks++
		// Keep the flash visible while the phase changes.
		if s.clearTicks%max(s.clearDuration()/flashSteps, 1) == 0 {
			s.dirty = true
		}
		if s.clearTicks >= s.clearDuration() {
			s.clearTicks = 0
			s.gravityTicks = 0
			s.game.FinishLineAnimation()
		}
	default:
		s.gravityTicks++
		if s.gravityTicks >= s.GravityInterval() {
			s.gravityTicks = 0
			s.game.MoveDown()
		}
	}

	return core.StepResult{State: s.State(), Changed: s.dirty}
}

func (s *Session) apply(a core.Action) {
	g := s.game
	switch a {
	case core.ActionLeft:
		g.MoveLeft()
	case core.ActionRight:
		g.MoveRight()
	case core.ActionSoftDrop:
		g.MoveDown()
		s.gravityTicks = 0
	case core.ActionHardDrop:
		g.HardDrop()
		s.gravityTicks = 0
	case core.ActionRotateCW:
		g.RotateClockwise()
	case core.ActionRotateCCW:
		g.RotateCounterClockwise()
	case core.ActionPause:
		if !g.IsGameOver() {
			g.TogglePause()
		}
	case core.ActionRestart:
		if g.IsGameOver() {
			s.restart()
		}
	case core.ActionToggleGhost:
		s.ghost = !s.ghost
		s.dirty = true
	case core.ActionToggleMute:
		if s.audio != nil {
			s.audio.ToggleMute()
			s.dirty = true
		}
	}
}

// GravityInterval returns how many ticks the piece waits per row at the
// current level.
func (s *Session) GravityInterval() int {
	return GravityTicks(s.cfg.Gravity, s.game.Level(), s.rt.TickRate)
}

// GravityTicks converts a level into ticks per row for the given table and
// tick rate. The result is at least 1.
func GravityTicks(g config.GravityConfig, level, tickRate int) int {
	mult := g.SpeedMultiplier
	if mult <= 0 {
		mult = 1
	}
	var seconds float64
	switch g.Table {
	case config.GravityLinear:
		seconds = 1 / float64(max(level, 1))
	default:
		seconds = float64(tetris.GravityFrames(level)) / 60
	}
	ticks := int(math.Round(seconds * float64(tickRate) / mult))
	return max(ticks, 1)
}

// clearDuration is the line flash length in ticks.
func (s *Session) clearDuration() int {
	return max(s.cfg.Timing.LineClearTicks*s.rt.TickRate/60, 1)
}

// FlashOn reports the visible phase of the line-clear flash.
func (s *Session) FlashOn() bool {
	step := s.clearTicks * flashSteps / s.clearDuration()
	return step%2 == 0
}

// Render draws the current frame.
func (s *Session) Render(dst *core.Screen) {
	render.Draw(dst, s.View())
}

// View collects everything the renderer needs.
func (s *Session) View() render.View {
	return render.View{
		Snap:    s.game.Snapshot(),
		Ghost:   s.ghost,
		FlashOn: s.FlashOn(),
		Muted:   s.audio == nil || s.audio.Muted(),
		Best:    s.best,
		Mode:    s.Mode(),
	}
}

// State returns the summary the platform polls after each tick.
func (s *Session) State() core.GameState {
	g := s.game
	return core.GameState{
		Score:     g.Score(),
		Level:     g.Level(),
		Lines:     g.Lines(),
		GameOver:  g.IsGameOver(),
		Paused:    g.IsPaused(),
		Animating: g.IsAnimatingLines(),
	}
}

// Snapshot returns a deep copy of the engine state.
func (s *Session) Snapshot() tetris.Snapshot { return s.game.Snapshot() }

// Mode names the randomizer, which doubles as the score table key.
func (s *Session) Mode() string { return s.game.RandomizerName() }

// RunID identifies the current game for score storage.
func (s *Session) RunID() string { return s.runID }

// SetBest sets the stored record shown in the HUD.
func (s *Session) SetBest(score int) { s.best = score }

// Ghost reports whether the landing preview is shown.
func (s *Session) Ghost() bool { return s.ghost }
