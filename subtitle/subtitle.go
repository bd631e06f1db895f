// Package subtitle discovers sibling subtitle files and converts them to cues.
package subtitle

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astisub"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subplay/subplay/cue"
	"github.com/subplay/subplay/filesystem"
	"github.com/subplay/subplay/key"
	"github.com/subplay/subplay/log"
)

// Loader resolves and parses subtitles next to a media file.
type Loader struct {
	// Extensions are tried in order; the last one that exists wins.
	Extensions []string
}

// NewLoader returns a loader configured from subtitles.extensions.
func NewLoader() *Loader {
	return &Loader{Extensions: viper.GetStringSlice(key.SubtitlesExtensions)}
}

// Sibling returns mediaPath with its extension replaced by ext.
func Sibling(mediaPath, ext string) string {
	return strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + "." + strings.TrimPrefix(ext, ".")
}

// Resolve returns the subtitle file for mediaPath, if any.
func (l *Loader) Resolve(mediaPath string) (string, bool) {
	var found string
	for _, ext := range l.Extensions {
		candidate := Sibling(mediaPath, ext)
		if candidate == mediaPath {
			continue
		}
		if exists, _ := filesystem.API().Exists(candidate); exists {
			found = candidate
		}
	}
	return found, found != ""
}

// Load parses the file at path. A missing file yields no cues and no error.
func (l *Loader) Load(path string) ([]cue.Cue, error) {
	fs := filesystem.API()
	if exists, _ := fs.Exists(path); !exists {
		return nil, nil
	}

	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open subtitles: %w", err)
	}
	defer file.Close()

	subs, err := read(path, file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	cues := FromItems(subs.Items)
	log.WithFields(logrus.Fields{"path": path, "cues": len(cues)}).Info("subtitles loaded")
	return cues, nil
}

func read(path string, r io.Reader) (*astisub.Subtitles, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".srt":
		return astisub.ReadFromSRT(r)
	case ".vtt":
		return astisub.ReadFromWebVTT(r)
	default:
		return nil, fmt.Errorf("unsupported subtitle format %q", ext)
	}
}

// FromItems converts parsed items to cues, numbered in parse order.
func FromItems(items []*astisub.Item) []cue.Cue {
	return lo.Map(items, func(item *astisub.Item, i int) cue.Cue {
		return cue.Cue{
			ID:        i,
			StartTime: item.StartAt.Seconds(),
			EndTime:   item.EndAt.Seconds(),
			Text: strings.Join(lo.Map(item.Lines, func(line astisub.Line, _ int) string {
				return line.String()
			}), "\n"),
		}
	})
}
