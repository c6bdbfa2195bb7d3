package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/tock/internal/logtail"
)

const logOverlayLines = 20

// openLog loads the tail of the session log for the overlay.
func (m *Model) openLog() {
	m.showLog = true
	m.logLines = nil
	m.logErr = nil
	if m.logPath == "" {
		return
	}
	m.logLines, m.logErr = logtail.Read(m.logPath, logOverlayLines)
}

// renderLog renders the session log overlay.
func (m Model) renderLog() string {
	styles := m.theme.Styles()

	modalWidth := m.width - 4
	if modalWidth > 100 {
		modalWidth = 100
	}
	if modalWidth < 20 {
		modalWidth = 20
	}
	lineWidth := modalWidth - 6

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Session Log"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(ansi.Truncate(m.logPath, lineWidth, "…")))
	b.WriteString("\n\n")

	switch {
	case m.logPath == "":
		b.WriteString(styles.MutedText.Render("Logging is disabled."))
	case m.logErr != nil:
		b.WriteString(styles.DangerText.Render(m.logErr.Error()))
	case len(m.logLines) == 0:
		b.WriteString(styles.MutedText.Render("Nothing logged yet."))
	default:
		for i, line := range m.logLines {
			style := styles.Text
			if strings.Contains(line, "effects:") || strings.Contains(line, "error") {
				style = styles.WarningText
			}
			b.WriteString(style.Render(ansi.Truncate(line, lineWidth, "…")))
			if i < len(m.logLines)-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	modal := styles.Modal.Width(modalWidth).Render(b.String())
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
