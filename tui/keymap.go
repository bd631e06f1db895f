package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/subplay/subplay/color"
	"github.com/subplay/subplay/style"
)

// statefulKeymap defines the keyboard interactions available in each state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	togglePlay,
	prevCue, nextCue,
	jumpBack, jumpForward,
	jumpBackLarge, jumpForwardLarge,
	fullScreen, leaveFullScreen,
	gain,
	focusSeekBar,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap(jumpSmall, jumpLarge float64) *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		togglePlay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp(style.Fg(color.Orange)("space"), style.Fg(color.Orange)("play/pause")),
		),
		prevCue: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous cue"),
		),
		nextCue: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next cue"),
		),
		jumpBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", fmt.Sprintf("-%gs", jumpSmall)),
		),
		jumpForward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", fmt.Sprintf("+%gs", jumpSmall)),
		),
		jumpBackLarge: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", fmt.Sprintf("-%gs", jumpLarge)),
		),
		jumpForwardLarge: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", fmt.Sprintf("+%gs", jumpLarge)),
		),
		fullScreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		leaveFullScreen: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave fullscreen"),
		),
		gain: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "gain"),
		),
		focusSeekBar: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus seek bar"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case playState:
		return h(k.togglePlay, k.prevCue, k.nextCue, k.fullScreen, k.showHelp, k.quit),
			h(k.togglePlay, k.prevCue, k.nextCue,
				k.jumpBack, k.jumpForward, k.jumpBackLarge, k.jumpForwardLarge,
				k.fullScreen, k.leaveFullScreen, k.gain, k.focusSeekBar, k.quit)
	case errorState:
		return to2(h(k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
