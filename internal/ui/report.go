package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderReport renders the summary line and the report pane.
func (m Model) renderReport() string {
	styles := m.theme.Styles()

	var summary string
	switch {
	case m.snapshot.LastError != nil:
		summary = styles.DangerText.Render("Last poll failed")
	case m.snapshot.HasReport:
		summary = styles.AccentText.Render("Report") + " " +
			styles.MutedText.Render(m.snapshot.Report.Summary())
		if keys := m.snapshot.Report.Keys(); len(keys) > 0 {
			summary += " " + styles.FaintText.Render(truncate(strings.Join(keys, ", "), m.width/2))
		}
	default:
		summary = styles.MutedText.Render("Waiting for the first poll")
	}

	return summary + "\n" + m.reportViewport.View()
}

// updateReportViewport refreshes the report pane from the current snapshot.
func (m *Model) updateReportViewport() {
	if !m.ready {
		return
	}
	m.reportViewport.SetContent(m.reportContent())
}

func (m Model) reportContent() string {
	styles := m.theme.Styles()
	switch {
	case m.snapshot.LastError != nil:
		text := fmt.Sprintf("%v", m.snapshot.LastError)
		wrap := lipgloss.NewStyle().Width(max(m.width-2, 10))
		msg := styles.DangerText.Render(wrap.Render(text))
		if m.snapshot.ConsecutiveFailures > 1 {
			msg += "\n\n" + styles.MutedText.Render(fmt.Sprintf("%d polls in a row have failed.", m.snapshot.ConsecutiveFailures))
		}
		return msg
	case m.snapshot.HasReport:
		return styles.Text.Render(m.snapshot.Report.Pretty())
	default:
		return styles.FaintText.Render("No status yet.")
	}
}
