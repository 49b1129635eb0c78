package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/voun8/relaypulse/internal/state"
)

// renderHeader renders the status bar: logo, endpoint status, interval and
// the time of the last poll.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newBgStyle(m.theme.Surface)
	sep := bg.spaces(2)

	status := statusLabel(m.snapshot)
	parts := []string{
		bg.render("RelayPulse", styles.Logo),
		styles.StatusStyle(status).Render(status),
	}

	if m.snapshot.IsOffline() {
		parts = append(parts, bg.render("Retrying...", styles.WarningText.Bold(true)))
	}

	parts = append(parts,
		bg.render("Every", styles.MutedText)+bg.spaces(1)+
			bg.render(formatInterval(m.interval), styles.Text),
	)

	last := "never"
	if !m.snapshot.LastUpdated.IsZero() {
		last = m.snapshot.LastUpdated.Format("15:04:05")
	}
	if m.width >= LayoutCompactWidth {
		parts = append(parts,
			bg.render("Updated", styles.MutedText)+bg.spaces(1)+
				bg.render(last, styles.Text),
		)
	} else {
		parts = append(parts, bg.render(last, styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// statusLabel summarises the latest poll outcome in a word or two.
func statusLabel(snap state.Snapshot) string {
	switch {
	case snap.LastError != nil:
		return classifyConnectionError(snap.LastError)
	case snap.HasReport:
		return "ONLINE"
	default:
		return "WAITING"
	}
}

// classifyConnectionError maps common transport failures to a header label.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"r", "Refresh"},
		{"+/-", "Interval"},
		{"l", "Logs"},
		{"o", "Website"},
	}
	if m.hideable {
		commands = append(commands, cmd{"x", "Hide"})
	}
	if m.width >= LayoutCompactWidth {
		commands = append(commands, cmd{"T", "Theme"})
	}
	commands = append(commands, cmd{"?", "Help"})

	parts := make([]string, 0, len(commands))
	for _, c := range commands {
		parts = append(parts,
			bg.render("<"+c.key+">", styles.WarningText)+bg.spaces(1)+
				bg.render(c.desc, styles.MutedText))
	}
	return styles.Footer.Width(m.width).Render(strings.Join(parts, bg.spaces(2)))
}

// renderFooter shows the transient flash message, or the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.flash != "" {
		return styles.InfoText.Width(m.width).Render(m.flash)
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

// renderHidden is drawn while the window is tucked into the tray.
func (m Model) renderHidden() string {
	styles := m.theme.Styles()
	return styles.MutedText.Render("RelayPulse is running in the tray. Use Show window, or press any key.")
}

// bgStyle renders text with a consistent background. lipgloss resets between
// styled segments would otherwise leave gaps in the background color.
type bgStyle struct {
	bg lipgloss.Color
}

func newBgStyle(color string) bgStyle {
	return bgStyle{bg: lipgloss.Color(color)}
}

func (b bgStyle) render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	return style.Background(b.bg).Render(text)
}

func (b bgStyle) spaces(n int) string {
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}
