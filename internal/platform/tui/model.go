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

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/invasion"
)

// RunStore records finished runs and reports the best score so far.
// *storage.Store satisfies it.
type RunStore interface {
	SaveRun(player string, score, wave int) (int64, error)
	HighScore() (int, error)
}

// Recorder receives every tick's snapshot. *trace.Recorder satisfies it.
type Recorder interface {
	Record(snap invasion.Snapshot, events []invasion.Event) error
}

// Options configures a game Model.
type Options struct {
	Session   invasion.Config
	Engine    []invasion.Option // Extra engine options, e.g. a scripted RNG
	InputHold time.Duration     // How long a key press counts as held
	Player    string            // Name runs are recorded under
	Store     RunStore          // Optional
	Recorder  Recorder          // Optional
	Logger    *log.Logger       // Optional; discards when nil
	ScreenW   int
	ScreenH   int
}

// Model is the Bubble Tea model running one invasion session.
type Model struct {
	session   *invasion.Session
	keys      *core.KeyState
	keymap    KeyMap
	help      help.Model
	screen    *core.Screen
	store     RunStore
	recorder  Recorder
	logger    *log.Logger
	player    string
	tickRate  int
	width     int
	height    int
	highScore int
	saved     bool // Whether the current run has been recorded
	quitting  bool
	now       func() time.Time
}

// defaultInputHold matches a typical terminal key-repeat interval.
const defaultInputHold = 150 * time.Millisecond

// NewModel creates a model with a fresh session.
func NewModel(opts Options) *Model {
	// Use time-based seed if not specified
	if opts.Session.Seed == 0 {
		opts.Session.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.InputHold <= 0 {
		opts.InputHold = defaultInputHold
	}
	if opts.Player == "" {
		opts.Player = "anonymous"
	}
	width, height := core.DefaultScreenW, core.DefaultScreenH
	if opts.ScreenW > 0 && opts.ScreenH > 0 {
		width, height = opts.ScreenW, opts.ScreenH
	}

	m := &Model{
		session:  invasion.NewSession(opts.Session, opts.Engine...),
		keys:     core.NewKeyState(opts.InputHold),
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		screen:   core.NewScreen(width, height),
		store:    opts.Store,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		player:   opts.Player,
		tickRate: opts.Session.TickRate,
		width:    width,
		height:   height,
		now:      time.Now,
	}
	m.layout()

	if m.store != nil {
		if high, err := m.store.HighScore(); err == nil {
			m.highScore = high
		} else {
			m.logger.Warn("could not read high score", "error", err)
		}
	}

	m.logger.Info("session started", "player", m.player, "seed", opts.Session.Seed)
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// layout sizes the screen buffer to the window minus the help bar.
func (m *Model) layout() {
	helpRows := 1
	if m.help.ShowAll {
		for _, col := range m.keymap.FullHelp() {
			helpRows = max(helpRows, len(col))
		}
	}
	m.help.Width = m.width
	m.screen.Resize(m.width, max(m.height-helpRows, hudRows+1))
}

// handleKey records key presses; the session sees them on the next tick.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keymap.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.keys.Press(m.keymap.Action(msg), m.now())
	return m, nil
}

// handleTick advances the session by one step.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res := m.session.Step(m.keys.Poll(now))
	logEvents(m.logger, m.player, res.Events)

	if m.recorder != nil {
		if err := m.recorder.Record(m.session.Snapshot(), res.Events); err != nil {
			m.logger.Error("trace disabled", "error", err)
			m.recorder = nil
		}
	}

	for _, e := range res.Events {
		if e.Kind == invasion.EventRestarted {
			m.saved = false
			m.keys.Reset()
		}
	}

	if res.State.GameOver {
		m.saveRun()
	}

	if m.session.Quitting() {
		m.saveRun()
		m.quitting = true
		m.logger.Info("session ended", "player", m.player, "score", m.session.Score(), "wave", m.session.Wave())
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// saveRun records the current run once. Empty runs are not recorded.
func (m *Model) saveRun() {
	if m.saved {
		return
	}
	m.saved = true

	score := m.session.Score()
	if score <= 0 {
		return
	}
	m.highScore = max(m.highScore, score)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.player, score, m.session.Wave()); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "player", m.player, "score", score, "wave", m.session.Wave())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.session.Snapshot(), m.highScore)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".invasion", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	filename := fmt.Sprintf("invasion_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
	}
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.session.Snapshot(), m.highScore)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keymap))
}

// Session exposes the running session.
func (m *Model) Session() *invasion.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

