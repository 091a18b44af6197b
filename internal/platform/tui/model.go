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

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// assetsReadyMsg reports that the theme is built and runs may start.
type assetsReadyMsg struct {
	theme *Theme
}

func loadTheme() tea.Msg {
	return assetsReadyMsg{theme: DefaultTheme()}
}

// Model is the Bubble Tea model driving one flappy session.
type Model struct {
	session       *flappy.Session
	screen        *core.Screen
	inputFrame    core.InputFrame
	keys          KeyMap
	help          help.Model
	theme         *Theme
	logger        *log.Logger
	tickRate      int
	screenshotDir string
	status        string
	ready         bool // theme loaded; start is ignored until then
	ticking       bool // a TickMsg is scheduled
	quitting      bool
}

// NewModel creates a model for session. The last terminal row is reserved
// for the help line.
func NewModel(session *flappy.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".flappy", "screenshots")
	}

	return Model{
		session:       session,
		screen:        core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		inputFrame:    core.NewInputFrame(),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		tickRate:      cfg.TickRate,
		screenshotDir: dir,
	}
}

// Init loads the theme. No tick is scheduled until a run starts.
func (m Model) Init() tea.Cmd {
	return loadTheme
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assetsReadyMsg:
		m.theme = msg.theme
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Flaps are buffered for the next
// tick; lifecycle commands apply at once so they work while no tick is
// scheduled.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionFlap:
		m.inputFrame.Set(core.ActionFlap)
	case core.ActionStart:
		if !m.ready {
			return m, nil
		}
		m.session.Start()
		m.status = ""
	case core.ActionTogglePause:
		m.session.TogglePause()
	}

	cmd := m.armTick()
	return m, cmd
}

// handleResize fits the screen to the terminal and widens or narrows the
// play field so the world keeps its aspect ratio.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := core.Max(msg.Height-1, 1)
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width

	field := m.session.Config().Field
	width := flappy.FieldWidthFor(field.Height, msg.Width, rows)
	if err := m.session.SetField(width, field.Height); err != nil {
		m.logger.Warn("keeping play field", "cols", msg.Width, "rows", rows, "err", err)
	}

	return m, nil
}

// handleTick runs one simulation step and schedules the next one while the
// run is active. Pausing or losing simply lets the tick chain end.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.session.Phase() != flappy.PhaseRunning {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.tickRate)
}

// armTick starts the tick chain if the session is running and no tick is
// pending.
func (m *Model) armTick() tea.Cmd {
	if m.ticking || m.session.Phase() != flappy.PhaseRunning {
		return nil
	}
	m.ticking = true
	return tickCmd(m.tickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}

	flappy.Render(m.screen, m.session.Snapshot())

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("flappy_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}
	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	screen := core.NewScreen(m.screen.Width(), m.screen.Height())
	flappy.Render(screen, m.session.Snapshot())

	footer := m.theme.Help.Render(m.help.View(m.keys))
	if m.status != "" {
		footer += "  " + m.theme.Status.Render(m.status)
	}
	return m.theme.RenderScreen(screen) + "\n" + footer
}
