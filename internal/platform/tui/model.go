package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/session"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one player's game.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	savedRun   string // run ID whose score has been saved
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a model around a session. store and logger may be nil.
func NewModel(sess *session.Session, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		session:    sess,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop. The session must already be reset.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Start resets the session and loads the stored record. Call it once before
// handing the model to a program.
func (m *Model) Start() {
	m.session.Reset(m.config)
	m.gameState = m.session.State()
	m.loadBest()
}

func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.session.Mode())
	if err != nil {
		m.logger.Warn("could not load high score", "err", err)
		return
	}
	m.session.SetBest(best)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		if m.gameState.GameOver || m.gameState.Paused {
			sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			sb.SelectMode(m.session.Mode())
			m.scoreboard = &sb
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// updateScoreboard forwards messages to the scoreboard overlay. Ticks keep
// flowing so the loop survives; the game itself is paused or over.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, tickCmd(m.config.TickRate)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	// Back and quit come with tea.Quit, which would end the whole program;
	// drop the command and act on the flags instead.
	next, cmd := m.scoreboard.Update(msg)
	sb, _ := next.(ScoreboardModel)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.session.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.saveScore()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run once. Failures are logged and play
// continues.
func (m *Model) saveScore() {
	run := m.session.RunID()
	if m.savedRun == run {
		return
	}
	m.savedRun = run
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreRecord{
		RunID: run,
		Mode:  m.session.Mode(),
		Score: m.gameState.Score,
		Lines: m.gameState.Lines,
		Level: m.gameState.Level,
	})
	if err != nil {
		m.logger.Warn("could not save score", "run", run, "err", err)
		return
	}
	m.logger.Info("score saved", "run", run, "score", m.gameState.Score)
	m.loadBest()
}

// saveScreenshot saves the current screen to ~/.tetris/screenshots.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	helpView := m.help.View(m.keys)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-lipgloss.Height(helpView))
	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpView)
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState { return m.gameState }

// Options configures a local game.
type Options struct {
	Session *session.Session
	Store   *storage.Store
	Logger  *log.Logger
	Runtime core.RuntimeConfig
}

// Run starts a local Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts.Session, opts.Store, opts.Logger, opts.Runtime)
	model.Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
