package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/subplay/subplay/duration"
	"github.com/subplay/subplay/icon"
	"github.com/subplay/subplay/slider"
)

const (
	cueHeight     = 3
	jumpMedium    = 10.0
	fallbackWidth = 40

	// rows from the top of the padded content
	cueRow      = 2
	barRow      = cueRow + cueHeight + 1
	controlsRow = barRow + 1
)

type button struct {
	from, to int
	press    func() tea.Cmd
}

// layout holds the screen positions of the interactive parts, in terminal
// cells.
type layout struct {
	visible     bool
	barRow      int
	barLeft     int
	barWidth    int
	controlsRow int
	controls    string
	buttons     []button
}

func (b *statefulBubble) contentWidth() int {
	if b.width <= 0 {
		return fallbackWidth
	}
	return b.width
}

func (b *statefulBubble) layout() layout {
	top, left := paddingStyle.GetPaddingTop(), paddingStyle.GetPaddingLeft()

	width := b.contentWidth()
	if b.barWidth > 0 {
		width = min(width, b.barWidth)
	}

	l := layout{
		visible:     b.ctrl.ControlsVisible(),
		barRow:      top + barRow,
		barLeft:     left,
		barWidth:    width,
		controlsRow: top + controlsRow,
	}
	l.controls, l.buttons = b.controls(left)
	return l
}

func (l layout) barGeometry() slider.Geometry {
	return slider.Geometry{
		Left:   float64(l.barLeft),
		Top:    float64(l.barRow),
		Width:  float64(max(l.barWidth-1, 1)),
		Height: 1,
	}
}

func (l layout) onBar(x, y int) bool {
	return l.visible && y == l.barRow && x >= l.barLeft && x < l.barLeft+l.barWidth
}

func (l layout) buttonAt(x int) (button, bool) {
	for _, btn := range l.buttons {
		if x >= btn.from && x < btn.to {
			return btn, true
		}
	}
	return button{}, false
}

// controls renders the time readout and the transport buttons, recording
// where each button lands starting at column x.
func (b *statefulBubble) controls(x int) (string, []button) {
	s := b.ctrl.State()

	var (
		line    strings.Builder
		buttons []button
	)

	add := func(text string) {
		line.WriteString(text)
		x += lipgloss.Width(text)
	}

	addButton := func(label string, press func() tea.Cmd) {
		rendered := buttonStyle.Render(label)
		buttons = append(buttons, button{from: x, to: x + lipgloss.Width(rendered), press: press})
		add(rendered)
		add(" ")
	}

	jump := func(step float64) func() tea.Cmd {
		return func() tea.Cmd {
			b.ctrl.Jump(step)
			return nil
		}
	}

	add(duration.Pair(s.CurrentTime, s.Duration))
	add("   ")

	for _, step := range []float64{b.jumpSmall, jumpMedium, b.jumpLarge} {
		addButton(fmt.Sprintf("%s%g", icon.Get(icon.Rewind), step), jump(-step))
	}

	playPause := icon.Get(icon.Play)
	if s.Playing {
		playPause = icon.Get(icon.Pause)
	}
	addButton(playPause, b.ctrl.TogglePlay)

	for _, step := range []float64{b.jumpSmall, jumpMedium, b.jumpLarge} {
		addButton(fmt.Sprintf("%g%s", step, icon.Get(icon.Forward)), jump(step))
	}

	add("  ")

	fullScreen := icon.Get(icon.FullScreen)
	if s.FullScreen {
		fullScreen = icon.Get(icon.Windowed)
	}
	addButton(fullScreen, func() tea.Cmd {
		b.ctrl.ToggleFullScreen()
		return nil
	})

	return line.String(), buttons
}
