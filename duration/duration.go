// Package duration formats playback positions for the time readout.
package duration

import (
	"fmt"
	"math"
)

const hour = 3600

// Prettify renders seconds as mm:ss, or h:mm:ss when d reaches an hour or
// the reference length does. Passing the media duration as length keeps
// the current time and the total in the same layout.
func Prettify(d, length float64) string {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		d = 0
	}

	total := int(math.Floor(d))
	hours := total / hour
	minutes := total / 60 % 60
	seconds := total % 60

	if hours > 0 || length >= hour {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Pair renders "current / total" with a shared layout.
func Pair(current, total float64) string {
	return Prettify(current, total) + " / " + Prettify(total, total)
}
