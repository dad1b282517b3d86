// Package tui runs gridsnake on Bubble Tea, in the local terminal or for
// SSH sessions served with Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the tick
// chain that produced it; messages from a stopped chain are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after period.
// The chain continues only if the model re-arms it on every tick.
func tickCmd(period time.Duration, gen int) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
