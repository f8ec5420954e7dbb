// Package tui provides the Bubble Tea front end for 2048: the local
// terminal program and the per-session model served over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent at the redraw rate.
type TickMsg time.Time

// SpawnMsg tells the model the new-tile delay has elapsed.
type SpawnMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// spawnCmd fires a SpawnMsg after delay. A zero delay spawns on the next
// update.
func spawnCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return SpawnMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SpawnMsg{}
	})
}
