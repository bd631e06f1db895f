package player

import (
	"strings"

	"github.com/samber/lo"
	"github.com/subplay/subplay/cue"
)

const chapterTitleWidth = 40

// Chapters turns cue starts into an mpv chapter-list, so mpv's own timeline
// marks the same boundaries the cue navigation jumps between.
func Chapters(cues []cue.Cue) []map[string]any {
	return lo.Map(cues, func(c cue.Cue, _ int) map[string]any {
		return map[string]any{
			"title": chapterTitle(c.Text),
			"time":  c.StartTime,
		}
	})
}

func chapterTitle(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	runes := []rune(line)
	if len(runes) > chapterTitleWidth {
		return string(runes[:chapterTitleWidth-1]) + "…"
	}
	return line
}

// SetChapters replaces the chapter markers of the current file.
func (m *MPV) SetChapters(cues []cue.Cue) error {
	return m.Set("chapter-list", Chapters(cues))
}
