// Package tui provides the Bubble Tea front end for the snake game.
// It handles the terminal UI loop, input mapping and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/scheduler"
)

// TickMsg is sent to deliver a scheduled game tick.
// Gen lets the model drop ticks scheduled before a restart.
type TickMsg struct {
	Gen scheduler.Generation
}

// tickCmd returns a Bubble Tea command that delivers one tick after the delay.
func tickCmd(s scheduler.Schedule) tea.Cmd {
	return tea.Tick(s.Delay, func(time.Time) tea.Msg {
		return TickMsg{Gen: s.Gen}
	})
}
