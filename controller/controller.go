// Package controller owns the playback state and turns host events and user
// input into media commands.
package controller

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/subplay/subplay/cue"
	"github.com/subplay/subplay/debounce"
	"github.com/subplay/subplay/log"
	"github.com/subplay/subplay/slider"
)

const (
	DefaultToggleDelay = 250 * time.Millisecond
	DefaultHideDelay   = 3000 * time.Millisecond
)

// Options configures a Controller.
type Options struct {
	// ToggleDelay coalesces play/pause requests.
	ToggleDelay time.Duration
	// HideDelay is how long controls stay visible without pointer movement.
	HideDelay time.Duration
	// Chapters pushes cue starts to hosts that support chapter markers.
	Chapters bool
	// StartAt is seeked to once the media has loaded.
	StartAt mo.Option[float64]
	// Capture registers the seek bar's drag listeners.
	Capture slider.Capture
}

// DefaultOptions returns the stock debounce windows.
func DefaultOptions() Options {
	return Options{
		ToggleDelay: DefaultToggleDelay,
		HideDelay:   DefaultHideDelay,
	}
}

// Controller is the playback controller. All methods must be called from the
// UI loop; commands they return deliver timer ticks back through Update.
type Controller struct {
	media     Media
	window    Window
	gain      Gain
	subtitles SubtitleLoader
	opts      Options

	state   State
	cues    *cue.Index
	src     string
	err     error
	startAt mo.Option[float64]

	playPause    *debounce.Timer
	hideControls *debounce.Timer
	seekBar      *slider.Slider
}

// New returns a controller around the given host collaborators.
func New(media Media, window Window, gain Gain, subtitles SubtitleLoader, opts Options) *Controller {
	if opts.ToggleDelay <= 0 {
		opts.ToggleDelay = DefaultToggleDelay
	}
	if opts.HideDelay <= 0 {
		opts.HideDelay = DefaultHideDelay
	}

	c := &Controller{
		media:        media,
		window:       window,
		gain:         gain,
		subtitles:    subtitles,
		opts:         opts,
		state:        initialState(),
		cues:         cue.NewIndex(nil),
		playPause:    debounce.New(opts.ToggleDelay),
		hideControls: debounce.New(opts.HideDelay),
	}

	c.seekBar = slider.New(c.seekBarConfig(), slider.Options{
		OnChange:    c.Seek,
		OnDragStart: c.SeekStart,
		OnDragEnd:   c.SeekEnd,
		Capture:     opts.Capture,
	})

	return c
}

// State returns a copy of the playback state.
func (c *Controller) State() State {
	return c.state
}

// Cues returns the loaded cue index, empty when there are no subtitles.
func (c *Controller) Cues() *cue.Index {
	return c.cues
}

// Source is the media currently loaded.
func (c *Controller) Source() string {
	return c.src
}

// SeekBar is the slider bound to the playback position.
func (c *Controller) SeekBar() *slider.Slider {
	return c.seekBar
}

// Err returns the last host failure, if any.
func (c *Controller) Err() error {
	return c.err
}

// ControlsVisible reports whether the control row is shown.
func (c *Controller) ControlsVisible() bool {
	return c.state.ShowControls || !c.state.Playing
}

// ActiveCue is the cue to render at the current time.
func (c *Controller) ActiveCue() mo.Option[cue.Cue] {
	return c.cues.Active(c.state.CurrentTime)
}

// Load opens src, resets the volume and loads its subtitles, if any.
// Subtitle failures are logged and leave the cue index empty.
func (c *Controller) Load(src string) error {
	c.src = src
	c.cues = cue.NewIndex(nil)
	c.startAt = c.opts.StartAt

	if err := c.media.Load(src); err != nil {
		return fmt.Errorf("load media: %w", err)
	}
	c.report("set volume", c.media.SetVolume(1))

	if c.subtitles == nil {
		return nil
	}

	path, ok := c.subtitles.Resolve(src)
	if !ok {
		log.Infof("no subtitles found for %s", src)
		return nil
	}

	cues, err := c.subtitles.Load(path)
	if err != nil {
		log.WithFields(logrus.Fields{"path": path, "error": err}).Warn("subtitles unavailable")
		return nil
	}
	c.cues = cue.NewIndex(cues)

	return nil
}

// Update routes timer ticks. It reports whether msg was consumed.
func (c *Controller) Update(msg tea.Msg) bool {
	return c.playPause.Update(msg) || c.hideControls.Update(msg) || c.seekBar.Update(msg)
}

// Close stops both timers and the seek bar.
func (c *Controller) Close() {
	c.playPause.Stop()
	c.hideControls.Stop()
	c.seekBar.Close()
}

// HandleLoadedData starts playback once the media has data.
func (c *Controller) HandleLoadedData() {
	if t, ok := c.startAt.Get(); ok {
		c.startAt = mo.None[float64]()
		c.SeekTo(t)
	}

	if c.opts.Chapters && c.cues.Len() > 0 {
		if setter, ok := c.media.(chapterSetter); ok {
			c.report("set chapters", setter.SetChapters(c.cues.Cues()))
		}
	}

	c.report("play", c.media.Play())
}

// HandleTimeUpdate records the host position unless the user is seeking.
func (c *Controller) HandleTimeUpdate(t float64) {
	if c.state.Seeking {
		return
	}
	c.state.CurrentTime = t
	c.syncSeekBar()
}

// HandleDurationChange records the media length.
func (c *Controller) HandleDurationChange(d float64) {
	c.state.Duration = d
	c.syncSeekBar()
}

// HandlePlaying marks playback as running and schedules hiding the controls.
func (c *Controller) HandlePlaying() tea.Cmd {
	c.state.Playing = true
	return c.armHide()
}

// HandlePause marks playback as paused and shows the controls.
func (c *Controller) HandlePause() {
	c.state.Playing = false
	c.state.ShowControls = true
}

// HandleSeeked records the position the host settled on.
func (c *Controller) HandleSeeked(t float64) {
	c.state.CurrentTime = t
	c.syncSeekBar()
}

// HandleSeeking records the position the host is moving to.
func (c *Controller) HandleSeeking(t float64) {
	c.HandleSeeked(t)
}

// HandleEnterFullScreen records that the window went fullscreen.
func (c *Controller) HandleEnterFullScreen() {
	c.state.FullScreen = true
}

// HandleLeaveFullScreen records that the window left fullscreen.
func (c *Controller) HandleLeaveFullScreen() {
	c.state.FullScreen = false
}

// HandleKey runs the action bound to a key. It reports whether the key was
// handled.
func (c *Controller) HandleKey(a Action) (tea.Cmd, bool) {
	switch a {
	case Escape:
		c.LeaveFullScreen()
	case Space:
		return c.TogglePlay(), true
	case Left:
		if c.state.Playing {
			c.report("pause", c.media.Pause())
			c.seekToTarget(c.cues.PreviousActive(c.state.CurrentTime))
		} else {
			c.seekToTarget(c.cues.Previous(c.state.CurrentTime))
		}
	case Right:
		c.seekToTarget(c.cues.Next(c.state.CurrentTime))
		c.report("pause", c.media.Pause())
	default:
		n, ok := a.digit()
		if !ok {
			return nil, false
		}
		c.report("set gain", c.gain.SetGain(float64(n)))
	}
	return nil, true
}

// TogglePlay requests the opposite of the host's pause state. Requests
// within the toggle window replace each other and only the last one runs.
func (c *Controller) TogglePlay() tea.Cmd {
	play := c.media.Paused()
	return c.playPause.Arm(func() {
		if play {
			c.report("play", c.media.Play())
		} else {
			c.report("pause", c.media.Pause())
		}
	})
}

// Click is a single click on the video surface.
func (c *Controller) Click() tea.Cmd {
	return c.TogglePlay()
}

// DoubleClick drops the toggle queued by the first click and flips fullscreen.
func (c *Controller) DoubleClick() {
	c.playPause.Cancel()
	c.ToggleFullScreen()
}

// MouseMove shows the controls and restarts the hide countdown.
func (c *Controller) MouseMove() tea.Cmd {
	c.state.ShowControls = true
	return c.armHide()
}

// Jump seeks relative to the host position.
func (c *Controller) Jump(step float64) {
	c.SeekTo(c.media.CurrentTime() + step)
}

// Seek seeks to t, or only records it while the seek bar is being dragged.
func (c *Controller) Seek(t float64) {
	if c.state.Seeking {
		c.state.CurrentTime = t
		c.syncSeekBar()
		return
	}
	c.SeekTo(t)
}

// SeekStart begins a seek-bar drag.
func (c *Controller) SeekStart() {
	c.state.Seeking = true
}

// SeekEnd commits the position chosen during the drag.
func (c *Controller) SeekEnd() {
	c.state.Seeking = false
	c.SeekTo(c.state.CurrentTime)
}

// ToggleFullScreen asks the window for the opposite fullscreen state.
func (c *Controller) ToggleFullScreen() {
	c.report("set fullscreen", c.window.SetFullScreen(!c.state.FullScreen))
}

// EnterFullScreen asks for fullscreen unless already there.
func (c *Controller) EnterFullScreen() {
	if !c.state.FullScreen {
		c.report("set fullscreen", c.window.SetFullScreen(true))
	}
}

// LeaveFullScreen leaves fullscreen if the window is in it.
func (c *Controller) LeaveFullScreen() {
	if c.state.FullScreen {
		c.report("set fullscreen", c.window.SetFullScreen(false))
	}
}

// SeekTo clamps t into [0, duration] and writes it to the host. A duration
// that is not known yet bounds only from below; non-finite input is ignored.
func (c *Controller) SeekTo(t float64) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return
	}

	t = max(t, 0)
	if d := c.state.Duration; d > 0 {
		t = min(t, d)
	}

	c.report("seek", c.media.SetCurrentTime(t))
}

func (c *Controller) seekToTarget(target mo.Option[float64]) {
	if t, ok := target.Get(); ok {
		c.SeekTo(t)
	}
}

func (c *Controller) armHide() tea.Cmd {
	return c.hideControls.Arm(func() {
		c.state.ShowControls = false
	})
}

func (c *Controller) seekBarConfig() slider.Config {
	return slider.Config{
		Min:      0,
		Max:      c.state.Duration,
		Value:    c.state.CurrentTime,
		Disabled: c.state.Duration <= 0,
	}
}

func (c *Controller) syncSeekBar() {
	c.seekBar.SetConfig(c.seekBarConfig())
}

// report logs a host failure and keeps it for the view. A later successful
// host call clears it.
func (c *Controller) report(op string, err error) {
	if err == nil {
		c.err = nil
		return
	}
	c.err = fmt.Errorf("%s: %w", op, err)
	log.Warn(c.err)
}
