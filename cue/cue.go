// Package cue answers time-based questions about an ordered sequence of subtitle cues.
//
// Every function is total: an empty sequence is a valid input and yields
// "no cue" (-1 or false) rather than an error.
package cue

// Tolerances applied to the playback time. They are deliberately distinct:
// unifying them changes which cue a key press lands on at cue boundaries.
const (
	// RenderEpsilon is added to the playback time when picking the cue to display.
	RenderEpsilon = 0.01

	// LookaheadEpsilon absorbs imprecise host-reported time during rapid navigation.
	LookaheadEpsilon = 0.1
)

// Cue is one subtitle entry. StartTime <= EndTime, both in seconds.
type Cue struct {
	ID        int     `json:"id" jsonschema:"description=Position of the cue in its source file."`
	StartTime float64 `json:"start_time" jsonschema:"description=Start of the cue in seconds."`
	EndTime   float64 `json:"end_time" jsonschema:"description=End of the cue in seconds."`
	Text      string  `json:"text" jsonschema:"description=Cue text. Lines are separated by a newline."`
}

// Contains reports whether t lies within the cue, bounds included.
func (c Cue) Contains(t float64) bool {
	return c.StartTime <= t && t <= c.EndTime
}

// FindActive returns the first cue containing t+RenderEpsilon.
// Overlapping cues resolve to the earliest in sequence order.
func FindActive(cues []Cue, t float64) (Cue, bool) {
	for _, c := range cues {
		if c.Contains(t + RenderEpsilon) {
			return c, true
		}
	}
	return Cue{}, false
}

// ActiveIndex returns the index of the first cue containing t exactly, or -1.
func ActiveIndex(cues []Cue, t float64) int {
	for i, c := range cues {
		if c.Contains(t) {
			return i
		}
	}
	return -1
}

// PreviousActiveIndex returns the cue containing t+LookaheadEpsilon, or failing
// that the cue preceding the first one that starts after t. It returns -1 when
// t is before the first cue or past every cue without landing in one.
//
// The scan stops at the first cue satisfying either condition, so a lookahead
// match on an earlier cue wins over a preceding-cue match on a later one.
func PreviousActiveIndex(cues []Cue, t float64) int {
	result := -1
	for i, c := range cues {
		if c.Contains(t + LookaheadEpsilon) {
			result = i
			break
		}
		if t < c.StartTime {
			result = max(-1, i-1)
			break
		}
	}
	return result
}

// SeekTarget clamps base+offset into the sequence and returns the start time of
// that cue. The second value is false when cues is empty.
func SeekTarget(cues []Cue, base, offset int) (float64, bool) {
	if len(cues) == 0 {
		return 0, false
	}
	return cues[clamp(base+offset, 0, len(cues)-1)].StartTime, true
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
