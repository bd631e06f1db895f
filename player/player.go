// Package player drives mpv over its JSON-IPC socket. mpv renders the video
// and stands in for the media element, the window and the audio gain stage
// that the playback controller talks to.
package player

// Names of the events forwarded from mpv. Property changes use the property
// name, other events use the mpv event name.
const (
	EventTimePos         = "time-pos"
	EventDuration        = "duration"
	EventPause           = "pause"
	EventSeeking         = "seeking"
	EventFullScreen      = "fullscreen"
	EventFileLoaded      = "file-loaded"
	EventPlaybackRestart = "playback-restart"
	EventEndFile         = "end-file"

	// EventExit is synthesized when the mpv process goes away.
	EventExit = "exit"
)

// observed lists the properties the event listener subscribes to.
var observed = []string{
	EventTimePos,
	EventDuration,
	EventPause,
	EventSeeking,
	EventFullScreen,
}

// Event is a single notification from mpv.
type Event struct {
	Name string
	Data any
}

// Float returns the payload as seconds. Unavailable properties report false.
func (e Event) Float() (float64, bool) {
	f, ok := e.Data.(float64)
	return f, ok
}

// Bool returns the payload as a flag.
func (e Event) Bool() (bool, bool) {
	b, ok := e.Data.(bool)
	return b, ok
}
