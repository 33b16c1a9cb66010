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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-shooter/internal/core"
	"github.com/vovakirdan/balloon-shooter/internal/registry"
)

const (
	// DefaultReleaseAfter is how long a key counts as held without a repeat.
	DefaultReleaseAfter = 550 * time.Millisecond

	// DefaultHitPause is how long the final frame stays up after a hit.
	DefaultHitPause = 1500 * time.Millisecond
)

// sessionEndMsg quits the program once the final frame has been shown.
type sessionEndMsg struct{}

// shotCounter is implemented by games that count shots for the end-of-session log.
type shotCounter interface {
	ShotsFired() int
}

// Options configures a TUI session.
type Options struct {
	Logger       *log.Logger   // Defaults to a discarding logger
	ReleaseAfter time.Duration // Defaults to DefaultReleaseAfter
	HitPause     time.Duration // Defaults to DefaultHitPause
}

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame *core.InputFrame
	hold       *holdTracker
	keys       KeyMap
	screenshot key.Binding
	help       help.Model
	logger     *log.Logger
	now        func() time.Time
	hitPause   time.Duration
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ReleaseAfter <= 0 {
		opts.ReleaseAfter = DefaultReleaseAfter
	}
	if opts.HitPause <= 0 {
		opts.HitPause = DefaultHitPause
	}

	frame := core.NewInputFrame()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: &frame,
		hold:       newHoldTracker(opts.ReleaseAfter),
		keys:       DefaultKeyMap(),
		screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		help:       help.New(),
		logger:     opts.Logger,
		now:        time.Now,
		hitPause:   opts.HitPause,
	}
}

// playHeight leaves the bottom row for the help footer.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return 1
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"tps", m.config.TickRate,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case sessionEndMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues a key press for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key skips the final frame
	if m.gameState.GameOver {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		m.logger.Debug("unbound key", "key", msg.String())
		return m, nil
	}
	m.hold.Press(action, m.now(), m.inputFrame)
	return m, nil
}

// handleResize keeps the screen buffer in step with the terminal.
// The arena is independent of the terminal, so the session continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if n := m.hold.Expire(m.now(), m.inputFrame); n > 0 {
		m.logger.Debug("synthesized key release", "keys", n)
	}

	result := m.game.Step(*m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.logSessionEnd()
		if m.gameState.Reason == core.EndHit {
			// Hold the final frame so the hit is visible
			return m, tea.Tick(m.hitPause, func(time.Time) tea.Msg {
				return sessionEndMsg{}
			})
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logSessionEnd() {
	fields := []any{"reason", m.gameState.Reason, "frames", m.gameState.Frames}
	if sc, ok := m.game.(shotCounter); ok {
		fields = append(fields, "shots", sc.ShotsFired())
	}
	m.logger.Info("session ended", fields...)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run plays one session in the terminal and returns the final game state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return game.State(), fmt.Errorf("tui: %w", err)
	}
	return game.State(), nil
}
