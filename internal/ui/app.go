package ui

import (
	"context"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tock/internal/display"
	"github.com/five82/tock/internal/prefs"
	"github.com/five82/tock/internal/settings"
	"github.com/five82/tock/internal/timer"
)

// Timer is the part of the engine the UI drives.
type Timer interface {
	Snapshot() timer.State
	Start()
	Pause()
	Reset()
	Adjust(total int) bool
}

// SettingsStore holds the session settings edited by the form.
type SettingsStore interface {
	Settings() settings.Settings
	Replace(next settings.Settings) uint64
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Timer     Timer
	Settings  SettingsStore
	Events    <-chan timer.Event
	ThemeName string
	PrefsPath string
	LogPath   string // empty when logging is disabled

	// OnSettingsChanged runs after the form replaced the settings.
	OnSettingsChanged func()
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	timer             Timer
	store             SettingsStore
	events            <-chan timer.Event
	onSettingsChanged func()
	prefsPath         string
	logPath           string
	keys              keyMap
	help              help.Model

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	selected display.Part
	showHelp bool
	showLog  bool
	logLines []string
	logErr   error
	form     *settingsForm
	notice   string

	// Timer state as of the last event
	state timer.State
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		timer:             opts.Timer,
		store:             opts.Settings,
		events:            opts.Events,
		onSettingsChanged: opts.OnSettingsChanged,
		prefsPath:         prefsPath,
		logPath:           opts.LogPath,
		keys:              DefaultKeyMap(),
		help:              help.New(),
		theme:             GetTheme(themeName),
		selected:          display.PartMinutes,
	}
	if m.timer != nil {
		m.state = m.timer.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case engineEventMsg:
		m.handleEvent(timer.Event(msg))
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showLog {
		return m.renderLog()
	}

	if m.form != nil {
		return m.form.View(m.theme, m.keys, m.width, m.height)
	}

	return m.renderMain()
}

func (m *Model) handleEvent(ev timer.Event) {
	m.state = ev.State
	switch ev.Type {
	case timer.EventAlert:
		m.notice = "Interval alert at " + display.Clock(display.Split(ev.Elapsed), false)
	case timer.EventCompleted:
		m.notice = "Time is up"
	case timer.EventEnteredRunning, timer.EventReset:
		m.notice = ""
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showLog {
		// Any key closes the overlay
		m.showHelp = false
		m.showLog = false
		return m, nil
	}

	if m.form != nil {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.openLog()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				log.Printf("ui: save prefs: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		if m.store != nil {
			form := newSettingsForm(m.store.Settings())
			m.form = &form
		}
		return m, nil
	}

	if m.timer == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.StartPause):
		if m.timer.Snapshot().Status == timer.StatusRunning {
			m.timer.Pause()
		} else {
			m.timer.Start()
		}

	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()

	case key.Matches(msg, m.keys.Left):
		if m.idle() {
			m.selected = m.selected.Prev()
		}

	case key.Matches(msg, m.keys.Right):
		if m.idle() {
			m.selected = m.selected.Next()
		}

	case key.Matches(msg, m.keys.Up):
		m.adjust(1)

	case key.Matches(msg, m.keys.Down):
		m.adjust(-1)

	default:
		return m, nil
	}

	m.state = m.timer.Snapshot()
	return m, nil
}

func (m Model) idle() bool {
	return m.timer.Snapshot().Status == timer.StatusIdle
}

func (m *Model) adjust(delta int) {
	current := m.timer.Snapshot()
	if current.Status != timer.StatusIdle {
		return
	}
	m.timer.Adjust(display.AdjustPart(current.Remaining, m.selected, delta))
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd, action := m.form.Update(msg, m.keys)
	switch action {
	case formCommit:
		m.applySettings(form.Settings())
	case formClose:
		m.applySettings(form.Settings())
		m.form = nil
		return m, nil
	}
	m.form = &form
	return m, cmd
}

func (m Model) applySettings(next settings.Settings) {
	if m.store == nil || next == m.store.Settings() {
		return
	}
	m.store.Replace(next)
	if m.onSettingsChanged != nil {
		m.onSettingsChanged()
	}
}

// renderMain renders the timer screen.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.AccentText.Bold(true).Render("tock"),
		" ",
		styles.StatusBadge(m.state.Status).Render(strings.ToUpper(string(m.state.Status))),
	)

	body := []string{header, "", m.renderClock(), "", m.renderHint()}
	if summary := m.renderSummary(); summary != "" {
		body = append(body, "", summary)
	}
	if m.notice != "" {
		body = append(body, "", styles.WarningText.Render(m.notice))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, body...)

	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	footer := styles.Footer.Render(m.help.View(m.keys))

	mainHeight := m.height - lipgloss.Height(footer)
	if mainHeight < lipgloss.Height(content) {
		mainHeight = lipgloss.Height(content)
	}
	main := lipgloss.Place(m.width, mainHeight, lipgloss.Center, lipgloss.Center, content)
	return main + "\n" + footer
}

// renderSummary lists the active sound and screen options in one line.
func (m Model) renderSummary() string {
	if m.store == nil {
		return ""
	}
	styles := m.theme.Styles()
	current := m.store.Settings()

	var parts []string
	if current.Ambience.Playable() {
		parts = append(parts, "♪ "+current.Ambience.DisplayName)
	}
	if current.Interval.Enabled && current.Interval.Period > 0 {
		alert := "alert every " + display.Clock(display.Split(current.Interval.Period), false)
		if current.Interval.HasFile() {
			alert += " (" + current.Interval.DisplayName + ")"
		}
		parts = append(parts, alert)
	}
	if current.KeepScreenOn {
		parts = append(parts, "screen stays on")
	}
	return styles.FaintText.Render(strings.Join(parts, " · "))
}

// Run starts the Bubble Tea program and blocks until the user quits, the
// engine closes its events or ctx is cancelled.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}
