package history

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/subplay/subplay/duration"
)

const (
	minResume      = 5.0
	finishedMargin = 10.0
)

// Position is the saved playback position of one media file.
type Position struct {
	Path      string    `json:"path"`
	Time      float64   `json:"time"`
	Duration  float64   `json:"duration"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Finished reports whether playback reached the end of the media.
func (p *Position) Finished() bool {
	return p.Duration > 0 && p.Time >= p.Duration-finishedMargin
}

// Resumable reports whether starting from Time is worthwhile.
func (p *Position) Resumable() bool {
	return p.Time >= minResume && !p.Finished()
}

func (p *Position) String() string {
	return fmt.Sprintf("%s : %s", filepath.Base(p.Path), duration.Pair(p.Time, p.Duration))
}
