package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voun8/relaypulse/internal/logtail"
)

type logTailMsg []string

type logErrorMsg struct {
	err error
}

// readLogsCmd tails the application log file.
func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logTailMsg(nil)
		}
		lines, err := logtail.Read(path, LogTailLines)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logTailMsg(lines)
	}
}

// setLogLines colorizes lines into the log pane, keeping the view pinned to
// the newest line when it already was.
func (m *Model) setLogLines(lines []string) {
	follow := m.logViewport.AtBottom()
	colored := logtail.ColorizeLines(lines, m.theme.LogPalette())
	m.logViewport.SetContent(strings.Join(colored, "\n"))
	if follow {
		m.logViewport.GotoBottom()
	}
}

// renderLogs renders the title line and the log pane.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	title := styles.AccentText.Render("Log") + " " + styles.MutedText.Render(truncateMiddle(m.logPath, max(m.width-6, 10)))
	if m.logPath == "" {
		title = styles.AccentText.Render("Log") + " " + styles.FaintText.Render("(file logging disabled)")
	}
	if m.logErr != nil {
		title += " " + styles.DangerText.Render(m.logErr.Error())
	}

	return title + "\n" + m.logViewport.View()
}
