package controller

import (
	"errors"
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/subplay/subplay/cue"
	"github.com/subplay/subplay/slider"
)

type fakeMedia struct {
	src      string
	time     float64
	duration float64
	paused   bool
	volume   float64
	plays    int
	pauses   int
	seeks    []float64
	chapters []cue.Cue
	seekErr  error
}

func (m *fakeMedia) Load(src string) error { m.src = src; return nil }
func (m *fakeMedia) CurrentTime() float64 { return m.time }
func (m *fakeMedia) Duration() float64 { return m.duration }
func (m *fakeMedia) Paused() bool { return m.paused }
func (m *fakeMedia) SetVolume(v float64) error { m.volume = v; return nil }
func (m *fakeMedia) Play() error { m.plays++; m.paused = false; return nil }
func (m *fakeMedia) Pause() error { m.pauses++; m.paused = true; return nil }
func (m *fakeMedia) SetChapters(c []cue.Cue) error { m.chapters = c; return nil }

func (m *fakeMedia) SetCurrentTime(t float64) error {
	if m.seekErr != nil {
		return m.seekErr
	}
	m.seeks = append(m.seeks, t)
	m.time = t
	return nil
}

type fakeWindow struct {
	requests []bool
}

func (w *fakeWindow) SetFullScreen(b bool) error {
	w.requests = append(w.requests, b)
	return nil
}

type fakeGain struct {
	values []float64
}

func (g *fakeGain) SetGain(v float64) error {
	g.values = append(g.values, v)
	return nil
}

type fakeLoader struct {
	path string
	cues []cue.Cue
	err  error
}

func (l *fakeLoader) Resolve(string) (string, bool) { return l.path, l.path != "" }
func (l *fakeLoader) Load(string) ([]cue.Cue, error) { return l.cues, l.err }

var threeCues = []cue.Cue{
	{ID: 0, StartTime: 0, EndTime: 2, Text: "a"},
	{ID: 1, StartTime: 3, EndTime: 5, Text: "b"},
	{ID: 2, StartTime: 6, EndTime: 8, Text: "c"},
}

type fixture struct {
	media  *fakeMedia
	window *fakeWindow
	gain   *fakeGain
	loader *fakeLoader
	c      *Controller
}

func newFixture(opts Options) *fixture {
	f := &fixture{
		media:  &fakeMedia{paused: true},
		window: &fakeWindow{},
		gain:   &fakeGain{},
		loader: &fakeLoader{path: "/m/movie.srt", cues: threeCues},
	}
	if opts.ToggleDelay == 0 {
		opts.ToggleDelay = time.Millisecond
	}
	if opts.HideDelay == 0 {
		opts.HideDelay = time.Millisecond
	}
	f.c = New(f.media, f.window, f.gain, f.loader, opts)
	So(f.c.Load("/m/movie.mkv"), ShouldBeNil)
	f.c.HandleDurationChange(100)
	return f
}

// fire runs a timer command and routes its tick back to the controller.
func fire(c *Controller, cmd tea.Cmd) {
	So(cmd, ShouldNotBeNil)
	So(c.Update(cmd()), ShouldBeTrue)
}

func TestLoad(t *testing.T) {
	Convey("Given a controller", t, func() {
		f := newFixture(Options{})

		Convey("Loading opens the media at full volume with its cues", func() {
			So(f.media.src, ShouldEqual, "/m/movie.mkv")
			So(f.media.volume, ShouldEqual, 1)
			So(f.c.Cues().Len(), ShouldEqual, 3)
			So(f.c.Source(), ShouldEqual, "/m/movie.mkv")
		})

		Convey("A subtitle failure leaves no cues and no error", func() {
			f.loader.err = errors.New("bad timestamp")
			So(f.c.Load("/m/other.mkv"), ShouldBeNil)
			So(f.c.Cues().Len(), ShouldEqual, 0)
		})

		Convey("Media without subtitles replaces the previous cues", func() {
			f.loader.path = ""
			So(f.c.Load("/m/other.mkv"), ShouldBeNil)
			So(f.c.Cues().Len(), ShouldEqual, 0)
		})

		Convey("Loaded data starts playback", func() {
			f.c.HandleLoadedData()
			So(f.media.plays, ShouldEqual, 1)
			So(f.media.chapters, ShouldBeNil)
		})
	})

	Convey("Given resume and chapter options", t, func() {
		f := newFixture(Options{StartAt: mo.Some(42.0), Chapters: true})

		Convey("The first loaded data seeks to the resume point once", func() {
			f.c.HandleLoadedData()
			f.c.HandleLoadedData()
			So(f.media.seeks, ShouldResemble, []float64{42})
			So(f.media.chapters, ShouldHaveLength, 3)
		})
	})
}

func TestHostEvents(t *testing.T) {
	Convey("Given a loaded controller", t, func() {
		f := newFixture(Options{})

		Convey("Time updates move the current time", func() {
			f.c.HandleTimeUpdate(12)
			So(f.c.State().CurrentTime, ShouldEqual, 12)
			So(f.c.SeekBar().Config().Value, ShouldEqual, 12)
			So(f.c.SeekBar().Config().Max, ShouldEqual, 100)
		})

		Convey("Time updates are ignored while seeking", func() {
			f.c.SeekStart()
			f.c.Seek(40)
			f.c.HandleTimeUpdate(12)
			So(f.c.State().CurrentTime, ShouldEqual, 40)
			So(f.media.seeks, ShouldBeEmpty)

			f.c.SeekEnd()
			So(f.c.State().Seeking, ShouldBeFalse)
			So(f.media.seeks, ShouldResemble, []float64{40})
		})

		Convey("Seeked and seeking events set the time even while dragging", func() {
			f.c.SeekStart()
			f.c.HandleSeeking(7)
			So(f.c.State().CurrentTime, ShouldEqual, 7)
			f.c.HandleSeeked(8)
			So(f.c.State().CurrentTime, ShouldEqual, 8)
		})

		Convey("Pause shows the controls", func() {
			f.c.HandlePlaying()
			f.c.HandlePause()
			So(f.c.State().Playing, ShouldBeFalse)
			So(f.c.State().ShowControls, ShouldBeTrue)
			So(f.c.ControlsVisible(), ShouldBeTrue)
		})

		Convey("Fullscreen notifications update the state", func() {
			f.c.HandleEnterFullScreen()
			So(f.c.State().FullScreen, ShouldBeTrue)
			f.c.HandleLeaveFullScreen()
			So(f.c.State().FullScreen, ShouldBeFalse)
		})

		Convey("The active cue follows the current time", func() {
			f.c.HandleTimeUpdate(3.5)
			So(f.c.ActiveCue().MustGet().Text, ShouldEqual, "b")
			f.c.HandleTimeUpdate(5.5)
			So(f.c.ActiveCue().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestSeekTo(t *testing.T) {
	Convey("Given a 100 second media", t, func() {
		f := newFixture(Options{})

		Convey("Targets are clamped into the media", func() {
			f.c.SeekTo(-5)
			f.c.SeekTo(500)
			f.c.SeekTo(50)
			So(f.media.seeks, ShouldResemble, []float64{0, 100, 50})
		})

		Convey("Non-finite targets are ignored", func() {
			f.c.SeekTo(math.NaN())
			f.c.SeekTo(math.Inf(1))
			So(f.media.seeks, ShouldBeEmpty)
		})

		Convey("An unknown duration bounds only from below", func() {
			f.c.HandleDurationChange(0)
			f.c.SeekTo(500)
			So(f.media.seeks, ShouldResemble, []float64{500})
		})

		Convey("Jumps are relative to the host position", func() {
			f.media.time = 10
			f.c.Jump(-30)
			f.c.Jump(5)
			So(f.media.seeks, ShouldResemble, []float64{0, 5})
		})
	})
}

func TestKeys(t *testing.T) {
	Convey("Given cues a [0,2], b [3,5], c [6,8]", t, func() {
		f := newFixture(Options{})

		Convey("Left while playing pauses and returns to the current cue", func() {
			f.c.HandlePlaying()
			f.c.HandleTimeUpdate(7)
			_, ok := f.c.HandleKey(Left)
			So(ok, ShouldBeTrue)
			So(f.media.pauses, ShouldEqual, 1)
			So(f.media.seeks, ShouldResemble, []float64{6})
		})

		Convey("Left while paused inside a cue goes to the previous cue", func() {
			f.c.HandleTimeUpdate(7)
			f.c.HandleKey(Left)
			So(f.media.pauses, ShouldEqual, 0)
			So(f.media.seeks, ShouldResemble, []float64{3})
		})

		Convey("Left while paused in a gap goes to the preceding cue", func() {
			f.c.HandleTimeUpdate(5.5)
			f.c.HandleKey(Left)
			So(f.media.seeks, ShouldResemble, []float64{3})
		})

		Convey("Right goes to the next cue and pauses", func() {
			f.c.HandleTimeUpdate(2.05)
			f.c.HandleKey(Right)
			So(f.media.seeks, ShouldResemble, []float64{3})
			So(f.media.pauses, ShouldEqual, 1)
		})

		Convey("Without cues, arrows only pause", func() {
			f.loader.path = ""
			So(f.c.Load("/m/bare.mkv"), ShouldBeNil)
			f.c.HandlePlaying()
			f.c.HandleKey(Left)
			f.c.HandleKey(Right)
			So(f.media.seeks, ShouldBeEmpty)
			So(f.media.pauses, ShouldEqual, 2)
		})

		Convey("Digits set the gain", func() {
			f.c.HandleKey(Digit(3))
			f.c.HandleKey(Action("9"))
			So(f.gain.values, ShouldResemble, []float64{3, 9})
		})

		Convey("Other keys are not handled", func() {
			_, ok := f.c.HandleKey(Action("0"))
			So(ok, ShouldBeFalse)
			_, ok = f.c.HandleKey(Action("x"))
			So(ok, ShouldBeFalse)
		})

		Convey("Escape leaves fullscreen only when in it", func() {
			f.c.HandleKey(Escape)
			So(f.window.requests, ShouldBeEmpty)
			f.c.HandleEnterFullScreen()
			f.c.HandleKey(Escape)
			So(f.window.requests, ShouldResemble, []bool{false})
		})

		Convey("Space toggles play after the debounce window", func() {
			cmd, ok := f.c.HandleKey(Space)
			So(ok, ShouldBeTrue)
			So(f.media.plays, ShouldEqual, 0)
			fire(f.c, cmd)
			So(f.media.plays, ShouldEqual, 1)
		})
	})
}

func TestTogglePlay(t *testing.T) {
	Convey("Given a paused controller", t, func() {
		f := newFixture(Options{})

		Convey("A later request supersedes an earlier one", func() {
			first := f.c.TogglePlay()
			second := f.c.TogglePlay()

			fire(f.c, first)
			So(f.media.plays, ShouldEqual, 0)
			fire(f.c, second)
			So(f.media.plays, ShouldEqual, 1)
		})

		Convey("A double click cancels the click's toggle", func() {
			cmd := f.c.Click()
			f.c.DoubleClick()
			fire(f.c, cmd)
			So(f.media.plays, ShouldEqual, 0)
			So(f.window.requests, ShouldResemble, []bool{true})
		})

		Convey("Playing media toggles to pause", func() {
			f.media.paused = false
			fire(f.c, f.c.TogglePlay())
			So(f.media.pauses, ShouldEqual, 1)
		})

		Convey("Close drops pending toggles", func() {
			cmd := f.c.TogglePlay()
			f.c.Close()
			fire(f.c, cmd)
			So(f.media.plays, ShouldEqual, 0)
			So(f.c.TogglePlay(), ShouldBeNil)
		})
	})
}

func TestControlsVisibility(t *testing.T) {
	Convey("Given playing media", t, func() {
		f := newFixture(Options{})
		hide := f.c.HandlePlaying()

		Convey("Controls hide after inactivity", func() {
			So(f.c.ControlsVisible(), ShouldBeTrue)
			fire(f.c, hide)
			So(f.c.ControlsVisible(), ShouldBeFalse)
		})

		Convey("Pointer movement restarts the countdown", func() {
			rearmed := f.c.MouseMove()
			fire(f.c, hide)
			So(f.c.ControlsVisible(), ShouldBeTrue)
			fire(f.c, rearmed)
			So(f.c.ControlsVisible(), ShouldBeFalse)
		})

		Convey("Pointer movement shows hidden controls", func() {
			fire(f.c, hide)
			f.c.MouseMove()
			So(f.c.State().ShowControls, ShouldBeTrue)
		})
	})

	Convey("Paused media always shows its controls", t, func() {
		f := newFixture(Options{})
		fire(f.c, f.c.MouseMove())
		So(f.c.State().ShowControls, ShouldBeFalse)
		So(f.c.ControlsVisible(), ShouldBeTrue)
	})
}

func TestSeekBar(t *testing.T) {
	Convey("Given a seek bar over a 100 second media", t, func() {
		f := newFixture(Options{})
		bar := f.c.SeekBar()
		track := slider.Geometry{Left: 0, Width: 200, Height: 1}

		Convey("Dragging buffers the position and commits it on release", func() {
			bar.PointerDown(track, slider.Point{X: 0})
			bar.PointerMove(track, slider.Point{X: 50})
			So(f.c.State().Seeking, ShouldBeTrue)
			So(f.c.State().CurrentTime, ShouldEqual, 25)
			bar.PointerMove(track, slider.Point{X: 100})
			So(f.media.seeks, ShouldBeEmpty)

			bar.PointerUp(track, slider.Point{X: 100})
			So(f.c.State().Seeking, ShouldBeFalse)
			So(f.media.seeks, ShouldResemble, []float64{50})
		})

		Convey("A click seeks at once", func() {
			cmd := bar.Click(track, slider.Point{X: 150})
			So(f.media.seeks, ShouldResemble, []float64{75})
			So(bar.Phase(), ShouldEqual, slider.Jumped)
			fire(f.c, cmd)
			So(bar.Phase(), ShouldEqual, slider.Idle)
		})

		Convey("The bar is disabled until the duration is known", func() {
			f.c.HandleDurationChange(0)
			So(bar.Phase(), ShouldEqual, slider.Disabled)
			bar.Click(track, slider.Point{X: 150})
			So(f.media.seeks, ShouldBeEmpty)
		})
	})
}

func TestHostErrors(t *testing.T) {
	Convey("Given a host that rejects a seek", t, func() {
		f := newFixture(Options{})
		f.media.seekErr = errors.New("property unavailable")

		f.c.SeekTo(10)
		So(f.c.Err(), ShouldNotBeNil)
		So(f.c.Err().Error(), ShouldContainSubstring, "seek")

		Convey("The next successful host call clears the error", func() {
			f.media.seekErr = nil
			f.c.SeekTo(12)
			So(f.c.Err(), ShouldBeNil)
			So(f.media.seeks, ShouldResemble, []float64{12})
		})

		Convey("A successful call of another kind clears it too", func() {
			f.c.HandleKey(Digit(3))
			So(f.c.Err(), ShouldBeNil)
		})

		Convey("Another failure replaces it", func() {
			f.c.SeekTo(20)
			So(f.c.Err(), ShouldNotBeNil)
		})
	})
}
