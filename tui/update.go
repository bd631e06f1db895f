package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/subplay/subplay/controller"
	"github.com/subplay/subplay/internal/ui"
	"github.com/subplay/subplay/player"
	"github.com/subplay/subplay/slider"
	"github.com/subplay/subplay/util"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.notifier.Update(msg)

	if b.ctrl.Update(msg) {
		return b, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, cmd
	case loadMsg:
		return b, tea.Batch(cmd, b.handleLoad())
	case playerMsg:
		return b.updatePlayer(player.Event(msg))
	case spinner.TickMsg:
		if !b.loading {
			return b, cmd
		}
		var tick tea.Cmd
		b.spinnerC, tick = b.spinnerC.Update(msg)
		return b, tea.Batch(cmd, tick)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case playState:
		return b, tea.Batch(cmd, b.updatePlay(msg))
	case errorState:
		return b, tea.Batch(cmd, b.updateError(msg))
	default:
		return b, cmd
	}
}

func (b *statefulBubble) handleLoad() tea.Cmd {
	if err := b.ctrl.Load(b.src); err != nil {
		b.raiseError(err)
		return nil
	}

	if n := b.ctrl.Cues().Len(); n > 0 {
		return ui.Notify(fmt.Sprintf("%s loaded", util.Quantify(n, "cue", "cues")))
	}
	return ui.Notify("no subtitles")
}

func (b *statefulBubble) updatePlayer(event player.Event) (tea.Model, tea.Cmd) {
	next := b.waitForEvent()

	switch event.Name {
	case player.EventExit:
		return b, tea.Quit
	case player.EventFileLoaded:
		b.loading = false
		if b.state == loadingState {
			b.setState(playState)
		}
		b.ctrl.HandleLoadedData()
	case player.EventTimePos:
		if t, ok := event.Float(); ok {
			b.ctrl.HandleTimeUpdate(t)
		}
	case player.EventDuration:
		if d, ok := event.Float(); ok {
			b.ctrl.HandleDurationChange(d)
		}
	case player.EventPause:
		paused, ok := event.Bool()
		if !ok {
			break
		}
		if !paused {
			return b, tea.Batch(next, b.ctrl.HandlePlaying())
		}
		b.ctrl.HandlePause()
	case player.EventSeeking:
		if seeking, ok := event.Bool(); ok && seeking {
			b.ctrl.HandleSeeking(b.host.CurrentTime())
		}
	case player.EventPlaybackRestart:
		b.ctrl.HandleSeeked(b.host.CurrentTime())
	case player.EventFullScreen:
		fullScreen, ok := event.Bool()
		switch {
		case !ok:
		case fullScreen:
			b.ctrl.HandleEnterFullScreen()
		default:
			b.ctrl.HandleLeaveFullScreen()
		}
	}

	return b, next
}

func (b *statefulBubble) updatePlay(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return b.handleMouse(msg)
	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return nil
}

func (b *statefulBubble) handleKey(msg tea.KeyMsg) tea.Cmd {
	bar := b.ctrl.SeekBar()

	if bubblesKey.Matches(msg, b.keymap.focusSeekBar) {
		if bar.Focused() {
			bar.Blur()
		} else {
			bar.Focus()
		}
		return nil
	}

	if bar.KeyDown(slider.Key(msg.String())) {
		return nil
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.quit):
		return tea.Quit
	case bubblesKey.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	case bubblesKey.Matches(msg, b.keymap.fullScreen):
		b.ctrl.ToggleFullScreen()
	case bubblesKey.Matches(msg, b.keymap.jumpBack):
		b.ctrl.Jump(-b.jumpSmall)
	case bubblesKey.Matches(msg, b.keymap.jumpForward):
		b.ctrl.Jump(b.jumpSmall)
	case bubblesKey.Matches(msg, b.keymap.jumpBackLarge):
		b.ctrl.Jump(-b.jumpLarge)
	case bubblesKey.Matches(msg, b.keymap.jumpForwardLarge):
		b.ctrl.Jump(b.jumpLarge)
	case bubblesKey.Matches(msg, b.keymap.gain):
		cmd, _ := b.ctrl.HandleKey(controller.Action(msg.String()))
		return tea.Batch(cmd, ui.Notify("gain ×"+msg.String()))
	default:
		cmd, _ := b.ctrl.HandleKey(controller.Action(msg.String()))
		return cmd
	}
	return nil
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return tea.Quit
	}
	return nil
}
