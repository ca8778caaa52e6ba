package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// framePeriod paces the render loop at roughly 30 frames per second.
const framePeriod = 33 * time.Millisecond

type frameMsg time.Time
type savedMsg struct{ err error }

func frameCmd() tea.Cmd {
	return tea.Tick(framePeriod, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
