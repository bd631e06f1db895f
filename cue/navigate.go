package cue

// Directional navigation used by the transport keys. Each returns the time to
// seek to and false when there is nothing to seek to.

// PreviousActiveTarget jumps to the start of the cue containing, or most
// recently preceding, t. Used while playing.
func PreviousActiveTarget(cues []Cue, t float64) (float64, bool) {
	return SeekTarget(cues, PreviousActiveIndex(cues, t), 0)
}

// PreviousTarget jumps to the cue before the current one when t is inside a
// cue, otherwise to the start of the nearest preceding cue. Used while paused.
func PreviousTarget(cues []Cue, t float64) (float64, bool) {
	offset := 0
	if ActiveIndex(cues, t) > -1 {
		offset = -1
	}
	return SeekTarget(cues, PreviousActiveIndex(cues, t), offset)
}

// NextTarget jumps to the cue after the current or most recently preceding one.
func NextTarget(cues []Cue, t float64) (float64, bool) {
	return SeekTarget(cues, PreviousActiveIndex(cues, t), 1)
}
