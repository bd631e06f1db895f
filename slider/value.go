// Package slider maps pointer, touch and keyboard input onto a value range.
//
// The slider is controlled: it never changes Config.Value itself. Every
// interaction resolves to a proposed value that is handed to OnChange, and the
// owner decides whether and when to feed it back through SetConfig.
package slider

import (
	"math"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Config is the owner-supplied state of a slider. A nil Step means values are
// rounded to three decimals instead of to a step multiple.
type Config struct {
	Min, Max, Value float64
	Step            *float64
	Disabled        bool
	Reverse         bool
	Vertical        bool
}

// DefaultConfig returns a 0..100 range with a step of 1.
func DefaultConfig() Config {
	return Config{Min: 0, Max: 100, Step: lo.ToPtr(1.0)}
}

// step returns the effective step, zero when unset.
func (c Config) step() float64 {
	if c.Step == nil {
		return 0
	}
	return *c.Step
}

// onePercent is one hundredth of the range.
func (c Config) onePercent() float64 {
	return math.Abs((c.Max - c.Min) / 100)
}

// Percent is the position of Value along the track, within [0, 100].
func (c Config) Percent() float64 {
	span := c.Max - c.Min
	if span == 0 {
		return 0
	}
	return clamp((c.Value-c.Min)*100/span, 0, 100)
}

// Point is a pointer position in the same coordinate space as Geometry.
type Point struct {
	X, Y float64
}

// Geometry is the track's bounding box.
type Geometry struct {
	Left, Top, Width, Height float64
}

// PercentAt projects p onto the track's primary axis and returns how far along
// it the pointer is, clamped to [0, 100] and inverted when reverse is set.
func PercentAt(g Geometry, p Point, vertical, reverse bool) float64 {
	pos, length := p.X-g.Left, g.Width
	if vertical {
		pos, length = p.Y-g.Top, g.Height
	}

	var percent float64
	if length > 0 {
		percent = clamp(pos/(length/100), 0, 100)
	}

	if reverse {
		return 100 - percent
	}
	return percent
}

// PercentToValue maps a track percentage onto [low, high].
func PercentToValue(percent, low, high float64) float64 {
	return (high-low)*percent/100 + low
}

// RoundToStep rounds v to the nearest multiple of step, halves rounding up.
func RoundToStep(v, step float64) float64 {
	return math.Floor(v/step+0.5) * step
}

// Resolve applies the step policy of cfg to a raw value.
func Resolve(cfg Config, raw float64) float64 {
	if step := cfg.step(); step != 0 {
		return RoundToStep(raw, step)
	}
	return math.Floor(raw*1000+0.5) / 1000
}

// ValueAt is the raw value under p.
func ValueAt(cfg Config, g Geometry, p Point) float64 {
	return PercentToValue(PercentAt(g, p, cfg.Vertical, cfg.Reverse), cfg.Min, cfg.Max)
}

// Key is a keyboard key as reported by bubbletea's KeyMsg.String.
type Key string

const (
	KeyHome     Key = "home"
	KeyEnd      Key = "end"
	KeyPageUp   Key = "pgup"
	KeyPageDown Key = "pgdown"
	KeyLeft     Key = "left"
	KeyRight    Key = "right"
	KeyUp       Key = "up"
	KeyDown     Key = "down"
)

// KeyValue returns the clamped value a key press proposes. The second value is
// false for keys the slider does not handle.
func KeyValue(cfg Config, k Key) (float64, bool) {
	onePercent := cfg.onePercent()
	step := cfg.step()
	if step == 0 {
		step = onePercent
	}

	var v float64
	switch k {
	case KeyHome:
		v = cfg.Min
	case KeyEnd:
		v = cfg.Max
	case KeyPageUp:
		v = cfg.Value + onePercent*10
	case KeyPageDown:
		v = cfg.Value - onePercent*10
	case KeyRight, KeyUp:
		v = cfg.Value + step
	case KeyLeft, KeyDown:
		v = cfg.Value - step
	default:
		return 0, false
	}

	return clamp(v, cfg.Min, cfg.Max), true
}

func clamp[T constraints.Ordered](v, low, high T) T {
	return min(max(v, low), high)
}
