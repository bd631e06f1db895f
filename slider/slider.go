package slider

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/subplay/subplay/debounce"
)

// JumpDuration is how long the thumb stays in the Jumped phase after a click.
const JumpDuration = 1000 * time.Millisecond

// Phase is the presentational state of the slider. It never affects values.
type Phase int

const (
	Idle Phase = iota
	Focused
	Dragging
	Disabled
	Jumped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Focused:
		return "focused"
	case Dragging:
		return "dragging"
	case Disabled:
		return "disabled"
	case Jumped:
		return "jumped"
	default:
		return "unknown"
	}
}

// Capture registers the global move/up listeners that follow a gesture
// outside the track. Every Attach is paired with exactly one Detach.
type Capture interface {
	Attach()
	Detach()
}

// Options carries the owner callbacks. Nil callbacks are skipped.
type Options struct {
	OnChange    func(value float64)
	OnDragStart func()
	OnDragEnd   func()
	Capture     Capture
}

// gesture is the kind of input that currently holds the slider.
type gesture int

const (
	noGesture gesture = iota
	pointerGesture
	touchGesture
)

// Slider is the interactive state around a controlled Config.
type Slider struct {
	cfg     Config
	opts    Options
	phase   Phase
	focused bool

	gesture  gesture
	started  bool // OnDragStart fired for the current gesture
	attached bool

	jump *debounce.Timer
}

// New returns a slider in the Idle phase, or Disabled if cfg says so.
func New(cfg Config, opts Options) *Slider {
	s := &Slider{
		opts: opts,
		jump: debounce.New(JumpDuration),
	}
	s.SetConfig(cfg)
	return s
}

// Config returns the last configuration supplied by the owner.
func (s *Slider) Config() Config {
	return s.cfg
}

// Phase returns the presentational phase.
func (s *Slider) Phase() Phase {
	return s.phase
}

// Dragging reports whether a gesture is in progress.
func (s *Slider) Dragging() bool {
	return s.gesture != noGesture
}

// Attached reports whether the global listeners are registered.
func (s *Slider) Attached() bool {
	return s.attached
}

// SetConfig replaces the owner state. Turning Disabled on forces the Disabled
// phase and ends any gesture; turning it off returns to Idle.
func (s *Slider) SetConfig(cfg Config) {
	s.cfg = cfg

	switch {
	case cfg.Disabled:
		if s.gesture != noGesture {
			s.endGesture()
		}
		s.jump.Cancel()
		s.phase = Disabled
	case s.phase == Disabled:
		s.phase = Idle
	}
}

// SetValue is SetConfig with only Value changed.
func (s *Slider) SetValue(v float64) {
	cfg := s.cfg
	cfg.Value = v
	s.SetConfig(cfg)
}

// Focus marks the thumb as focused. A gesture in progress keeps the Dragging phase.
func (s *Slider) Focus() {
	if s.cfg.Disabled {
		return
	}
	s.focused = true
	if s.gesture == noGesture {
		s.phase = Focused
	}
}

// Blur removes focus. A gesture in progress keeps the Dragging phase.
func (s *Slider) Blur() {
	if s.cfg.Disabled {
		return
	}
	s.focused = false
	if s.gesture == noGesture {
		s.phase = Idle
	}
}

// Focused reports whether key presses reach the slider.
func (s *Slider) Focused() bool {
	return s.focused
}

// PointerDown begins a pointer gesture. OnDragStart is deferred to the first
// move so that a press released in place counts as a click.
func (s *Slider) PointerDown(_ Geometry, _ Point) {
	if s.cfg.Disabled || s.gesture != noGesture {
		return
	}
	s.jump.Cancel()
	s.gesture = pointerGesture
	s.started = false
	s.phase = Dragging
	s.attach()
}

// PointerMove proposes the value under p while a gesture is in progress.
func (s *Slider) PointerMove(g Geometry, p Point) {
	if s.cfg.Disabled || s.gesture == noGesture {
		return
	}
	if !s.started {
		s.started = true
		if s.opts.OnDragStart != nil {
			s.opts.OnDragStart()
		}
	}
	s.emit(ValueAt(s.cfg, g, p))
}

// PointerUp ends a pointer gesture. A gesture without moves is a click at p.
func (s *Slider) PointerUp(g Geometry, p Point) tea.Cmd {
	if s.cfg.Disabled || s.gesture != pointerGesture {
		return nil
	}
	moved := s.started
	s.endGesture()
	if moved {
		return nil
	}
	return s.Click(g, p)
}

// TouchStart begins a touch gesture. Touch has no click, so OnDragStart
// fires immediately.
func (s *Slider) TouchStart(_ Geometry, _ Point) {
	if s.cfg.Disabled || s.gesture != noGesture {
		return
	}
	s.jump.Cancel()
	s.gesture = touchGesture
	s.phase = Dragging
	s.attach()
	s.started = true
	if s.opts.OnDragStart != nil {
		s.opts.OnDragStart()
	}
}

// TouchMove proposes the value under the touch point.
func (s *Slider) TouchMove(g Geometry, p Point) {
	if s.cfg.Disabled || s.gesture != touchGesture {
		return
	}
	s.emit(ValueAt(s.cfg, g, p))
}

// TouchEnd ends a touch gesture.
func (s *Slider) TouchEnd() {
	if s.cfg.Disabled || s.gesture != touchGesture {
		return
	}
	s.endGesture()
}

// Click proposes the value under p without a drag and, when a change is
// emitted, flashes the Jumped phase for JumpDuration.
func (s *Slider) Click(g Geometry, p Point) tea.Cmd {
	if s.cfg.Disabled {
		return nil
	}
	if !s.emit(ValueAt(s.cfg, g, p)) {
		return nil
	}
	s.phase = Jumped
	return s.jump.Arm(func() {
		if s.phase == Jumped {
			s.phase = Idle
		}
	})
}

// KeyDown handles a key while focused. It reports whether the key was
// consumed, in which case its default action should be suppressed.
func (s *Slider) KeyDown(k Key) bool {
	if s.cfg.Disabled || !s.focused {
		return false
	}
	v, ok := KeyValue(s.cfg, k)
	if !ok {
		return false
	}
	s.emit(v)
	return true
}

// Update routes the jump timer's tick.
func (s *Slider) Update(msg tea.Msg) bool {
	return s.jump.Update(msg)
}

// Close releases the global listeners and the jump timer. The slider must not
// be used afterwards.
func (s *Slider) Close() {
	s.detach()
	s.gesture = noGesture
	s.jump.Stop()
}

// emit resolves raw against the step policy and reports the change, if any.
func (s *Slider) emit(raw float64) bool {
	if s.cfg.Disabled {
		return false
	}
	v := Resolve(s.cfg, raw)
	if v == s.cfg.Value {
		return false
	}
	if s.opts.OnChange != nil {
		s.opts.OnChange(v)
	}
	return true
}

func (s *Slider) endGesture() {
	started := s.started
	s.gesture = noGesture
	s.started = false
	s.detach()
	s.phase = Idle
	if started && s.opts.OnDragEnd != nil {
		s.opts.OnDragEnd()
	}
}

func (s *Slider) attach() {
	if s.attached {
		return
	}
	s.attached = true
	if s.opts.Capture != nil {
		s.opts.Capture.Attach()
	}
}

func (s *Slider) detach() {
	if !s.attached {
		return
	}
	s.attached = false
	if s.opts.Capture != nil {
		s.opts.Capture.Detach()
	}
}
