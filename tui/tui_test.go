package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/subplay/subplay/controller"
	"github.com/subplay/subplay/cue"
	"github.com/subplay/subplay/player"
)

type fakeHost struct {
	time    float64
	paused  bool
	plays   int
	seeks   []float64
	screens []bool
	gains   []float64
	events  chan player.Event
	loaded  string
	closed  bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{paused: true, events: make(chan player.Event, 8)}
}

func (h *fakeHost) Load(src string) error { h.loaded = src; return nil }
func (h *fakeHost) CurrentTime() float64 { return h.time }
func (h *fakeHost) Duration() float64 { return 100 }
func (h *fakeHost) Paused() bool { return h.paused }
func (h *fakeHost) Play() error { h.plays++; h.paused = false; return nil }
func (h *fakeHost) Pause() error { h.paused = true; return nil }
func (h *fakeHost) SetVolume(float64) error { return nil }
func (h *fakeHost) SetFullScreen(b bool) error { h.screens = append(h.screens, b); return nil }
func (h *fakeHost) SetGain(g float64) error { h.gains = append(h.gains, g); return nil }
func (h *fakeHost) Events() <-chan player.Event { return h.events }
func (h *fakeHost) Close() error { h.closed = true; return nil }

func (h *fakeHost) SetCurrentTime(t float64) error {
	h.seeks = append(h.seeks, t)
	h.time = t
	return nil
}

type fakeLoader struct{}

func (fakeLoader) Resolve(string) (string, bool) { return "/m/movie.srt", true }
func (fakeLoader) Load(string) ([]cue.Cue, error) {
	return []cue.Cue{{ID: 0, StartTime: 1, EndTime: 4, Text: "hello there"}}, nil
}

func newTestBubble() (*statefulBubble, *fakeHost) {
	h := newFakeHost()
	b := newBubble(&Options{
		Path:      "/m/movie.mkv",
		JumpSmall: 5,
		JumpLarge: 30,
		Controller: controller.Options{
			ToggleDelay: time.Millisecond,
			HideDelay:   time.Millisecond,
		},
	}, h, fakeLoader{})
	b.resize(80, 24)
	return b, h
}

// send delivers msg and returns the follow-up command.
func send(b *statefulBubble, msg tea.Msg) tea.Cmd {
	_, cmd := b.Update(msg)
	return cmd
}

func playing(b *statefulBubble) {
	send(b, loadMsg{})
	send(b, playerMsg{Name: player.EventFileLoaded})
	send(b, playerMsg{Name: player.EventDuration, Data: 100.0})
}

func TestPlayerEvents(t *testing.T) {
	Convey("Given a loading player screen", t, func() {
		b, h := newTestBubble()
		So(b.state, ShouldEqual, loadingState)

		Convey("Loading opens the media and its subtitles", func() {
			send(b, loadMsg{})
			So(h.loaded, ShouldEqual, "/m/movie.mkv")
			So(b.ctrl.Cues().Len(), ShouldEqual, 1)
		})

		Convey("A loaded file switches to playback and starts it", func() {
			playing(b)
			So(b.state, ShouldEqual, playState)
			So(b.loading, ShouldBeFalse)
			So(h.plays, ShouldEqual, 1)
		})

		Convey("Property changes reach the controller", func() {
			playing(b)
			send(b, playerMsg{Name: player.EventTimePos, Data: 2.0})
			send(b, playerMsg{Name: player.EventPause, Data: false})
			send(b, playerMsg{Name: player.EventFullScreen, Data: true})

			s := b.ctrl.State()
			So(s.CurrentTime, ShouldEqual, 2)
			So(s.Duration, ShouldEqual, 100)
			So(s.Playing, ShouldBeTrue)
			So(s.FullScreen, ShouldBeTrue)
			So(b.View(), ShouldContainSubstring, "hello there")
		})

		Convey("Unavailable values are ignored", func() {
			playing(b)
			send(b, playerMsg{Name: player.EventTimePos, Data: 2.0})
			send(b, playerMsg{Name: player.EventTimePos})
			So(b.ctrl.State().CurrentTime, ShouldEqual, 2)
		})

		Convey("mpv exiting quits", func() {
			cmd := send(b, playerMsg{Name: player.EventExit})
			So(cmd(), ShouldResemble, tea.Quit())
		})
	})
}

func TestKeys(t *testing.T) {
	Convey("Given a playing screen", t, func() {
		b, h := newTestBubble()
		playing(b)
		h.time = 50

		Convey("Jump keys move relative to the host time", func() {
			send(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")})
			send(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("}")})
			So(h.seeks, ShouldResemble, []float64{45, 75})
		})

		Convey("Digits set the gain", func() {
			send(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
			So(h.gains, ShouldResemble, []float64{4})
		})

		Convey("f toggles fullscreen", func() {
			send(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
			So(h.screens, ShouldResemble, []bool{true})
		})

		Convey("A focused seek bar takes the arrow keys", func() {
			send(b, tea.KeyMsg{Type: tea.KeyTab})
			send(b, tea.KeyMsg{Type: tea.KeyEnd})
			So(h.seeks, ShouldResemble, []float64{100})
		})

		Convey("q quits", func() {
			cmd := send(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
			So(cmd, ShouldNotBeNil)
		})
	})
}

func TestMouse(t *testing.T) {
	Convey("Given a playing screen 80 columns wide", t, func() {
		b, h := newTestBubble()
		playing(b)
		l := b.layout()

		Convey("The seek bar spans the padded width", func() {
			So(l.barLeft, ShouldEqual, 2)
			So(l.barWidth, ShouldEqual, 76)
			So(l.barRow, ShouldEqual, 7)
		})

		Convey("Dragging the seek bar commits on release", func() {
			send(b, tea.MouseMsg{X: 2, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			So(b.capture.attached, ShouldBeTrue)

			send(b, tea.MouseMsg{X: 17, Y: 12, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
			So(b.ctrl.State().Seeking, ShouldBeTrue)
			So(h.seeks, ShouldBeEmpty)

			send(b, tea.MouseMsg{X: 17, Y: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
			So(b.capture.attached, ShouldBeFalse)
			So(h.seeks, ShouldResemble, []float64{20})
		})

		Convey("Buttons are hit by column", func() {
			btn, ok := l.buttonAt(l.buttons[0].from)
			So(ok, ShouldBeTrue)
			h.time = 50
			btn.press()
			So(h.seeks, ShouldResemble, []float64{45})
		})

		Convey("A double click on the surface toggles fullscreen without playing", func() {
			h.paused = true
			now := time.Now()
			first := b.clickSurface(now)
			second := b.clickSurface(now.Add(100 * time.Millisecond))

			send(b, first())
			send(b, second())
			So(h.screens, ShouldResemble, []bool{true})
			So(h.plays, ShouldEqual, 1)
		})

		Convey("A single click toggles playback", func() {
			h.paused = true
			send(b, b.clickSurface(time.Now())())
			So(h.plays, ShouldEqual, 2)
		})
	})
}
