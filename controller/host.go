package controller

import "github.com/subplay/subplay/cue"

// Media is the host media element.
type Media interface {
	Load(src string) error
	CurrentTime() float64
	SetCurrentTime(seconds float64) error
	Duration() float64
	Paused() bool
	Play() error
	Pause() error
	SetVolume(volume float64) error
}

// Window is the host fullscreen capability. Enter and leave notifications
// come back through HandleEnterFullScreen and HandleLeaveFullScreen.
type Window interface {
	SetFullScreen(fullScreen bool) error
}

// Gain is the amplification stage after the media element.
type Gain interface {
	SetGain(gain float64) error
}

// SubtitleLoader finds and parses the subtitles of a media file.
type SubtitleLoader interface {
	Resolve(mediaPath string) (string, bool)
	Load(path string) ([]cue.Cue, error)
}

// chapterSetter is implemented by hosts that can display cue starts.
type chapterSetter interface {
	SetChapters(cues []cue.Cue) error
}
