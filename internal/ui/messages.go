package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tock/internal/timer"
)

// engineEventMsg carries one engine event into the update loop.
type engineEventMsg timer.Event

// eventsClosedMsg is sent once the engine closed its subscription.
type eventsClosedMsg struct{}

// waitForEvent blocks on the subscription until the next event arrives.
// Update re-issues it after every event so exactly one read is pending.
func waitForEvent(events <-chan timer.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return engineEventMsg(ev)
	}
}
