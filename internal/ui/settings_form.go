package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/tock/internal/config"
	"github.com/five82/tock/internal/settings"
)

const (
	fieldAmbienceEnabled = iota
	fieldAmbienceFile
	fieldIntervalEnabled
	fieldIntervalFile
	fieldIntervalPeriod
	fieldKeepScreenOn
)

const (
	formModalWidth = 60
	fileNameWidth  = 32
)

// formAction tells the model what to do after a key reached the form.
type formAction int

const (
	formNone formAction = iota
	formCommit
	formClose
)

// settingsForm edits a copy of the session settings. The model writes the
// copy back to the store on every formCommit and on close.
type settingsForm struct {
	base  settings.Settings
	focus int

	ambienceOn   bool
	intervalOn   bool
	keepScreenOn bool

	ambienceFile textinput.Model
	intervalFile textinput.Model
	period       textinput.Model
}

func newSettingsForm(current settings.Settings) settingsForm {
	ambience := textinput.New()
	ambience.Placeholder = "path to an audio file"
	ambience.CharLimit = 512
	ambience.Width = 28
	ambience.SetValue(current.Ambience.FileRef)

	interval := textinput.New()
	interval.Placeholder = "path to an audio file"
	interval.CharLimit = 512
	interval.Width = 28
	interval.SetValue(current.Interval.FileRef)

	period := textinput.New()
	period.Placeholder = "seconds"
	period.CharLimit = 6
	period.Width = 8
	period.SetValue(strconv.Itoa(current.Interval.Period))

	return settingsForm{
		base:         current,
		focus:        fieldAmbienceEnabled,
		ambienceOn:   current.Ambience.Enabled,
		intervalOn:   current.Interval.Enabled,
		keepScreenOn: current.KeepScreenOn,
		ambienceFile: ambience,
		intervalFile: interval,
		period:       period,
	}
}

// visible lists the fields shown for the current toggles. File and period
// rows only appear under an enabled section.
func (f settingsForm) visible() []int {
	fields := []int{fieldAmbienceEnabled}
	if f.ambienceOn {
		fields = append(fields, fieldAmbienceFile)
	}
	fields = append(fields, fieldIntervalEnabled)
	if f.intervalOn {
		fields = append(fields, fieldIntervalFile, fieldIntervalPeriod)
	}
	return append(fields, fieldKeepScreenOn)
}

func (f settingsForm) input(field int) *textinput.Model {
	switch field {
	case fieldAmbienceFile:
		return &f.ambienceFile
	case fieldIntervalFile:
		return &f.intervalFile
	case fieldIntervalPeriod:
		return &f.period
	}
	return nil
}

func isToggle(field int) bool {
	return field == fieldAmbienceEnabled || field == fieldIntervalEnabled || field == fieldKeepScreenOn
}

func (f *settingsForm) move(delta int) tea.Cmd {
	fields := f.visible()
	idx := 0
	for i, field := range fields {
		if field == f.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	return f.setFocus(fields[idx])
}

func (f *settingsForm) setFocus(field int) tea.Cmd {
	f.ambienceFile.Blur()
	f.intervalFile.Blur()
	f.period.Blur()
	f.focus = field
	switch field {
	case fieldAmbienceFile:
		return f.ambienceFile.Focus()
	case fieldIntervalFile:
		return f.intervalFile.Focus()
	case fieldIntervalPeriod:
		return f.period.Focus()
	}
	return nil
}

func (f *settingsForm) toggle() {
	switch f.focus {
	case fieldAmbienceEnabled:
		f.ambienceOn = !f.ambienceOn
	case fieldIntervalEnabled:
		f.intervalOn = !f.intervalOn
	case fieldKeepScreenOn:
		f.keepScreenOn = !f.keepScreenOn
	}
}

// Update handles a key press while the form is open.
func (f settingsForm) Update(msg tea.KeyMsg, keys keyMap) (settingsForm, tea.Cmd, formAction) {
	switch {
	case key.Matches(msg, keys.Escape):
		return f, nil, formClose

	case key.Matches(msg, keys.Tab):
		cmd := f.move(1)
		return f, cmd, formCommit

	case key.Matches(msg, keys.ShiftTab):
		cmd := f.move(-1)
		return f, cmd, formCommit

	case key.Matches(msg, keys.Confirm):
		if isToggle(f.focus) {
			f.toggle()
		}
		return f, nil, formCommit

	case isToggle(f.focus) && key.Matches(msg, keys.Toggle):
		f.toggle()
		return f, nil, formCommit
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldAmbienceFile:
		f.ambienceFile, cmd = f.ambienceFile.Update(msg)
	case fieldIntervalFile:
		f.intervalFile, cmd = f.intervalFile.Update(msg)
	case fieldIntervalPeriod:
		f.period, cmd = f.period.Update(msg)
	}
	return f, cmd, formNone
}

// Settings returns the edited settings. A period without leading digits
// becomes zero.
func (f settingsForm) Settings() settings.Settings {
	next := f.base
	next.Ambience = withPath(next.Ambience, f.ambienceFile.Value())
	next.Ambience.Enabled = f.ambienceOn
	next.Interval.SoundConfig = withPath(next.Interval.SoundConfig, f.intervalFile.Value())
	next.Interval.Enabled = f.intervalOn
	next.Interval.Period = parsePeriod(f.period.Value())
	next.KeepScreenOn = f.keepScreenOn
	return next.Normalize()
}

func withPath(sound settings.SoundConfig, raw string) settings.SoundConfig {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return sound.WithoutFile()
	case raw == sound.FileRef:
		return sound
	}
	expanded, err := config.ExpandPath(raw)
	if err != nil {
		return sound.WithFile(raw)
	}
	return sound.WithFile(expanded)
}

// parsePeriod reads the leading digits of raw, so "12s" is 12. Input with
// no leading digits, or a negative number, is 0.
func parsePeriod(raw string) int {
	raw = strings.TrimSpace(raw)
	end := strings.IndexFunc(raw, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(raw)
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return n
}

// View renders the form as a centered modal.
func (f settingsForm) View(theme Theme, keys keyMap, width, height int) string {
	styles := theme.Styles()
	current := f.Settings()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Settings"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", formModalWidth-6)))
	b.WriteString("\n\n")

	for _, field := range f.visible() {
		b.WriteString(f.renderField(field, current, styles))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	h := help.New()
	h.Styles.ShortKey = styles.AccentText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	b.WriteString(h.ShortHelpView(keys.formHelp()))

	modal := styles.Modal.Width(formModalWidth).Render(b.String())
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func (f settingsForm) renderField(field int, current settings.Settings, styles Styles) string {
	label := fieldLabel(field)
	labelStyle := styles.MutedText
	if field == f.focus {
		labelStyle = styles.AccentText
	}
	line := labelStyle.Render(label)

	switch field {
	case fieldAmbienceEnabled:
		line += renderSwitch(f.ambienceOn, styles)
		line += "\n" + styles.FaintText.Render("  Plays continuously while running")
	case fieldIntervalEnabled:
		line += renderSwitch(f.intervalOn, styles)
		line += "\n" + styles.FaintText.Render("  Pulse and optional sound every period")
	case fieldKeepScreenOn:
		line += renderSwitch(f.keepScreenOn, styles)
		line += "\n" + styles.FaintText.Render("  Prevent sleep during countdown")
	case fieldAmbienceFile:
		line += f.input(field).View() + "\n" + renderFileName(current.Ambience, styles)
	case fieldIntervalFile:
		line += f.input(field).View() + "\n" + renderFileName(current.Interval.SoundConfig, styles)
	case fieldIntervalPeriod:
		line += f.input(field).View() + styles.FaintText.Render(" sec")
	}

	if field == f.focus {
		return styles.Focused.Render("›") + " " + line
	}
	return "  " + line
}

func fieldLabel(field int) string {
	switch field {
	case fieldAmbienceEnabled:
		return "Ambience sound  "
	case fieldAmbienceFile, fieldIntervalFile:
		return "  File          "
	case fieldIntervalEnabled:
		return "Interval alerts "
	case fieldIntervalPeriod:
		return "  Every         "
	case fieldKeepScreenOn:
		return "Keep screen on  "
	}
	return ""
}

func renderSwitch(on bool, styles Styles) string {
	if on {
		return styles.SuccessText.Render("[on] ")
	}
	return styles.FaintText.Render("[off]")
}

func renderFileName(sound settings.SoundConfig, styles Styles) string {
	if !sound.HasFile() {
		return styles.FaintText.Render("    No file selected")
	}
	return styles.MutedText.Render("    " + ansi.Truncate(sound.DisplayName, fileNameWidth, "…"))
}
