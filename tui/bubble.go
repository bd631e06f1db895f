// Package tui renders the control surface of the player and routes terminal
// input to the playback controller.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/subplay/subplay/controller"
	"github.com/subplay/subplay/internal/ui"
	"github.com/subplay/subplay/player"
	"github.com/subplay/subplay/util"
)

const doubleClickWindow = 300 * time.Millisecond

// host is the player process seen from the UI: the controller's
// collaborators plus the event stream they report on.
type host interface {
	controller.Media
	controller.Window
	controller.Gain
	Events() <-chan player.Event
	Close() error
}

// statefulBubble is the bubbletea model of the player screen.
type statefulBubble struct {
	state   state
	loading bool

	keymap *statefulKeymap

	spinnerC spinner.Model
	helpC    help.Model

	host    host
	ctrl    *controller.Controller
	capture *mouseCapture

	src       string
	jumpSmall float64
	jumpLarge float64
	barWidth  int
	lastClick time.Time

	lastError error

	width, height int
	notifier      *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
}

func newBubble(options *Options, h host, loader controller.SubtitleLoader) *statefulBubble {
	bubble := &statefulBubble{
		keymap:    newStatefulKeymap(options.JumpSmall, options.JumpLarge),
		host:      h,
		capture:   &mouseCapture{},
		src:       options.Path,
		jumpSmall: options.JumpSmall,
		jumpLarge: options.JumpLarge,
		barWidth:  options.SliderWidth,
		notifier:  &ui.Model{},
		options:   options,
	}

	opts := options.Controller
	opts.Capture = bubble.capture
	bubble.ctrl = controller.New(h, h, h, loader, opts)

	bubble.helpC = help.New()
	bubble.helpC.ShowAll = options.ShowHelp

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	if width, height, err := util.TerminalSize(); err == nil {
		bubble.resize(width, height)
	}

	bubble.setState(loadingState)
	bubble.loading = true

	return bubble
}
