package controller

// State is the playback state rendered by the view. While Seeking,
// CurrentTime holds the value proposed by the seek bar and time updates from
// the host are ignored.
type State struct {
	CurrentTime  float64
	Duration     float64
	Playing      bool
	Seeking      bool
	ShowControls bool
	FullScreen   bool
}

func initialState() State {
	return State{ShowControls: true}
}
