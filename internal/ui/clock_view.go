package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tock/internal/display"
	"github.com/five82/tock/internal/timer"
)

const glyphRows = 5

// bigClockMinWidth is the narrowest terminal that fits HH:MM:SS in block digits.
const bigClockMinWidth = 32

var glyphs = map[rune][glyphRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"  █", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

// renderGlyphs draws text in block digits, one string per row.
func renderGlyphs(text string) [glyphRows]string {
	var rows [glyphRows]string
	for i, r := range text {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for row := range rows {
			if i > 0 {
				rows[row] += " "
			}
			rows[row] += g[row]
		}
	}
	return rows
}

type clockSegment struct {
	part  display.Part
	value int
}

// visibleSegments returns the segments on screen, left to right.
func visibleSegments(state timer.State) []clockSegment {
	seg := display.Split(state.Remaining)
	adjusting := state.Status == timer.StatusIdle
	segments := make([]clockSegment, 0, 3)
	if display.ShowHours(seg, adjusting) {
		segments = append(segments, clockSegment{display.PartHours, seg.Hours})
	}
	return append(segments,
		clockSegment{display.PartMinutes, seg.Minutes},
		clockSegment{display.PartSeconds, seg.Seconds},
	)
}

// renderClock draws the remaining time. While idle the selected segment is
// underlined so the user can see what the arrows will change.
func (m Model) renderClock() string {
	styles := m.theme.Styles()
	digitStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.StatusColor(m.state.Status))).
		Bold(true)
	selectedStyle := digitStyle.Foreground(lipgloss.Color(m.theme.Accent))
	adjusting := m.state.Status == timer.StatusIdle

	segments := visibleSegments(m.state)

	if m.width > 0 && m.width < bigClockMinWidth {
		parts := make([]string, 0, len(segments))
		for _, s := range segments {
			style := digitStyle
			if adjusting && s.part == m.selected {
				style = selectedStyle.Underline(true)
			}
			parts = append(parts, style.Render(display.Pad(s.value)))
		}
		return strings.Join(parts, digitStyle.Render(":"))
	}

	colon := renderGlyphs(":")
	columns := make([]string, 0, len(segments)*2)
	for i, s := range segments {
		if i > 0 {
			columns = append(columns, digitStyle.Render(" "+strings.Join(colon[:], " \n ")+" "))
		}
		rows := renderGlyphs(display.Pad(s.value))
		style := digitStyle
		marker := strings.Repeat(" ", lipgloss.Width(rows[0]))
		if adjusting && s.part == m.selected {
			style = selectedStyle
			marker = styles.AccentText.Render(strings.Repeat("▀", lipgloss.Width(rows[0])))
		}
		columns = append(columns, style.Render(strings.Join(rows[:], "\n"))+"\n"+marker)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// renderHint shows how to adjust while idle and the state otherwise.
func (m Model) renderHint() string {
	styles := m.theme.Styles()
	switch m.state.Status {
	case timer.StatusIdle:
		if m.state.Remaining == 0 && m.state.Initial == 0 {
			return styles.WarningText.Render("Set a duration with ↑/↓ to start")
		}
		return styles.MutedText.Render("←/→ select " + segmentName(m.selected) + " · ↑/↓ adjust · space start")
	case timer.StatusPaused:
		return styles.MutedText.Render("Paused · space resume · r reset")
	default:
		return styles.MutedText.Render("space pause · r reset")
	}
}

func segmentName(p display.Part) string {
	switch p {
	case display.PartHours:
		return "hours"
	case display.PartMinutes:
		return "minutes"
	default:
		return "seconds"
	}
}
