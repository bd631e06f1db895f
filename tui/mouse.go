package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/subplay/subplay/slider"
)

// mouseCapture routes motion and release events anywhere on screen to the
// seek bar while it holds a drag.
type mouseCapture struct {
	attached bool
}

func (c *mouseCapture) Attach() { c.attached = true }
func (c *mouseCapture) Detach() { c.attached = false }

func (b *statefulBubble) handleMouse(msg tea.MouseMsg) tea.Cmd {
	l := b.layout()
	bar := b.ctrl.SeekBar()
	geometry := l.barGeometry()
	point := slider.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionMotion:
		if b.capture.attached {
			bar.PointerMove(geometry, point)
		}
		return b.ctrl.MouseMove()
	case tea.MouseActionRelease:
		if b.capture.attached {
			return bar.PointerUp(geometry, point)
		}
		return nil
	case tea.MouseActionPress:
	default:
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		b.ctrl.Jump(b.jumpSmall)
		return nil
	case tea.MouseButtonWheelDown:
		b.ctrl.Jump(-b.jumpSmall)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	switch {
	case !l.visible || msg.Y < l.barRow:
		return b.clickSurface(time.Now())
	case l.onBar(msg.X, msg.Y):
		bar.PointerDown(geometry, point)
	case msg.Y == l.controlsRow:
		if btn, ok := l.buttonAt(msg.X); ok {
			return btn.press()
		}
	}
	return nil
}

// clickSurface treats a press above the controls like a click on the video.
// A second press within doubleClickWindow is a double click.
func (b *statefulBubble) clickSurface(now time.Time) tea.Cmd {
	cmd := b.ctrl.Click()
	if !b.lastClick.IsZero() && now.Sub(b.lastClick) <= doubleClickWindow {
		b.ctrl.DoubleClick()
		b.lastClick = time.Time{}
		return cmd
	}
	b.lastClick = now
	return cmd
}
