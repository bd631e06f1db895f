package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/subplay/subplay/player"
)

type loadMsg struct{}

// playerMsg carries one mpv event into the update loop.
type playerMsg player.Event

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.load(), b.waitForEvent())
}

func (b *statefulBubble) load() tea.Cmd {
	return func() tea.Msg {
		return loadMsg{}
	}
}

// waitForEvent blocks on the next mpv event. A closed stream reads as exit.
func (b *statefulBubble) waitForEvent() tea.Cmd {
	events := b.host.Events()
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return playerMsg{Name: player.EventExit}
		}
		return playerMsg(event)
	}
}
