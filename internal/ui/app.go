package ui

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voun8/relaypulse/internal/browser"
	"github.com/voun8/relaypulse/internal/commands"
	"github.com/voun8/relaypulse/internal/prefs"
	"github.com/voun8/relaypulse/internal/state"
)

// Options configures the window.
type Options struct {
	Facade    *commands.Facade
	Board     *state.Board
	Refresh   func() // asks the poller for an immediate fetch
	LogPath   string
	PrefsPath string
	ThemeName string
	Hideable  bool // only true when a tray icon can bring the window back
	Tick      time.Duration
	OpenURL   func(url string) error
}

// Model is the root window state for Bubble Tea.
type Model struct {
	// Configuration
	facade    *commands.Facade
	board     *state.Board
	refresh   func()
	logPath   string
	prefsPath string
	hideable  bool
	tick      time.Duration
	openURL   func(url string) error

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	hidden   bool
	showLogs bool
	showHelp bool

	// Data state
	snapshot state.Snapshot
	interval uint64

	// Panes
	reportViewport viewport.Model
	logViewport    viewport.Model
	logErr         error

	// Footer flash message
	flash      string
	flashUntil time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	openURL := opts.OpenURL
	if openURL == nil {
		openURL = browser.Open
	}

	board := opts.Board
	if board == nil {
		board = &state.Board{}
	}

	facade := opts.Facade
	if facade == nil {
		facade = commands.New(nil, nil)
	}

	m := Model{
		facade:    facade,
		board:     board,
		refresh:   opts.Refresh,
		logPath:   opts.LogPath,
		prefsPath: prefsPath,
		hideable:  opts.Hideable,
		tick:      tick,
		openURL:   openURL,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		interval:  facade.GetInterval(),
	}
	m.applyHelpStyles()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.tick),
		fetchSnapshotCmd(m.board, m.facade),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.reportViewport = viewport.New(msg.Width, m.paneHeight())
			m.logViewport = viewport.New(msg.Width, m.paneHeight())
		}
		m.ready = true
		m.resizePanes()
		m.updateReportViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = msg.snapshot
		m.interval = msg.interval
		m.updateReportViewport()
		return m, nil

	case logTailMsg:
		m.logErr = nil
		m.setLogLines(msg)
		return m, nil

	case logErrorMsg:
		m.logErr = msg.err
		return m, nil

	case showMsg:
		m.hidden = false
		return m, nil

	case focusMsg:
		m.hidden = false
		m.setFlash("Window shown from tray")
		return m, fetchSnapshotCmd(m.board, m.facade)

	case savedMsg:
		if msg.err != nil {
			log.Printf("save %s failed: %v", msg.what, msg.err)
			m.setFlash(fmt.Sprintf("Could not save %s", msg.what))
		}
		return m, nil

	case openedMsg:
		if msg.err != nil {
			log.Printf("open %s failed: %v", msg.url, msg.err)
			m.setFlash("Could not open browser")
		} else {
			m.setFlash("Opened " + msg.url)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.hidden {
		return m.renderHidden()
	}

	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any key brings a hidden window back.
	if m.hidden {
		m.hidden = false
		return m, nil
	}

	// Any key closes help.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Hide):
		if m.hideable {
			m.hidden = true
		} else {
			m.setFlash("No tray icon; use ctrl+c to quit")
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyHelpStyles()
		m.updateReportViewport()
		name := m.theme.Name
		cmds := []tea.Cmd{savePrefsCmd(m.prefsPath, "theme", func(p *prefs.Prefs) { p.Theme = name })}
		if m.showLogs {
			cmds = append(cmds, readLogsCmd(m.logPath))
		}
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keys.IncreaseInterval):
		current := m.facade.GetInterval()
		if current > math.MaxUint64-IntervalStepMS {
			m.setFlash("Interval is already at its maximum")
			return m, nil
		}
		return m.setInterval(current + IntervalStepMS)

	case key.Matches(msg, m.keys.DecreaseInterval):
		current := m.facade.GetInterval()
		if current <= IntervalFloorMS {
			m.setFlash(fmt.Sprintf("Interval is already %s or less", formatInterval(IntervalFloorMS)))
			return m, nil
		}
		return m.setInterval(max(current-IntervalStepMS, IntervalFloorMS))

	case key.Matches(msg, m.keys.Refresh):
		if m.refresh != nil {
			m.refresh()
			m.setFlash("Refreshing...")
		}
		return m, nil

	case key.Matches(msg, m.keys.OpenSite):
		return m, openCmd(m.openURL, browser.SiteURL)

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		if m.showLogs {
			return m, readLogsCmd(m.logPath)
		}
		return m, nil
	}

	return m.handleScrollKey(msg)
}

// handleScrollKey moves the active pane.
func (m Model) handleScrollKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := &m.reportViewport
	if m.showLogs {
		vp = &m.logViewport
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		vp.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		vp.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		vp.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		vp.HalfPageDown()
	}
	return m, nil
}

// setInterval stores ms through the facade and persists it. The poller
// picks the value up when it schedules its next fetch.
func (m Model) setInterval(ms uint64) (tea.Model, tea.Cmd) {
	m.facade.SetInterval(ms)
	m.interval = ms
	m.setFlash(fmt.Sprintf("Polling every %s", formatInterval(ms)))
	return m, savePrefsCmd(m.prefsPath, "interval", func(p *prefs.Prefs) { p.IntervalMS = ms })
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{fetchSnapshotCmd(m.board, m.facade)}

	if m.showLogs && !m.hidden {
		cmds = append(cmds, readLogsCmd(m.logPath))
	}

	if m.flash != "" && time.Now().After(m.flashUntil) {
		m.flash = ""
	}

	cmds = append(cmds, tickCmd(m.tick))
	return m, tea.Batch(cmds...)
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashUntil = time.Now().Add(FlashDuration)
}

func (m *Model) applyHelpStyles() {
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	m.help.Styles.FullSeparator = m.help.Styles.ShortSeparator
}

func (m Model) paneHeight() int {
	h := m.height - chromeLines
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) resizePanes() {
	for _, vp := range []*viewport.Model{&m.reportViewport, &m.logViewport} {
		vp.Width = m.width
		vp.Height = m.paneHeight()
	}
}

// renderMain renders the full window.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	if m.showLogs {
		b.WriteString(m.renderLogs())
	} else {
		b.WriteString(m.renderReport())
	}
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg struct {
	snapshot state.Snapshot
	interval uint64
}

type showMsg struct{}

type focusMsg struct{}

type savedMsg struct {
	what string
	err  error
}

type openedMsg struct {
	url string
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(board *state.Board, facade *commands.Facade) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snapshot: board.Snapshot(), interval: facade.GetInterval()}
	}
}

func savePrefsCmd(path, what string, fn func(*prefs.Prefs)) tea.Cmd {
	return func() tea.Msg {
		_, err := prefs.Update(path, fn)
		return savedMsg{what: what, err: err}
	}
}

func openCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{url: url, err: open(url)}
	}
}
