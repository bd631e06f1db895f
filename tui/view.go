package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/subplay/subplay/color"
	"github.com/subplay/subplay/icon"
	"github.com/subplay/subplay/slider"
	"github.com/subplay/subplay/style"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	buttonStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(style.ButtonText).Background(style.ButtonBackground)
	cueStyle     = lipgloss.NewStyle().Foreground(style.Text).Bold(true)
	trackStyle   = lipgloss.NewStyle().Foreground(style.Played)
	restStyle    = lipgloss.NewStyle().Foreground(style.Remaining)
)

// thumbStyles are tried in order; the first matching condition wins.
var thumbStyles = []struct {
	when  any
	style lipgloss.Style
}{
	{"disabled", lipgloss.NewStyle().Foreground(style.ThumbDisabled)},
	{map[string]bool{"jumped": true}, lipgloss.NewStyle().Foreground(style.ThumbJumped).Bold(true)},
	{"activated", lipgloss.NewStyle().Foreground(style.ThumbDragged).Bold(true)},
	{func(p slider.Props) bool { return p["focused"] && !p["activated"] }, lipgloss.NewStyle().Foreground(style.ThumbFocused).Underline(true)},
}

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case playState:
		output = b.viewPlay()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + filepath.Base(b.src),
		},
	)
}

func (b *statefulBubble) viewPlay() string {
	l := b.layout()

	title := style.Title(filepath.Base(b.src))
	if n := b.ctrl.Cues().Len(); n > 0 {
		title += " " + style.Faint(fmt.Sprintf("%s %d", icon.Get(icon.Subtitles), n))
	}

	lines := []string{title, ""}
	lines = append(lines, b.viewCue()...)
	lines = append(lines, "")

	if l.visible {
		lines = append(lines, b.viewSeekBar(l.barWidth), l.controls)
	} else {
		lines = append(lines, "", "")
	}

	if err := b.ctrl.Err(); err != nil {
		lines = append(lines, "", style.Truncate(b.contentWidth())(style.Fg(color.Red)(err.Error())))
	}

	return b.renderLines(true, lines)
}

// viewCue returns exactly cueHeight centered lines, bottom aligned.
func (b *statefulBubble) viewCue() []string {
	width := b.contentWidth()
	lines := make([]string, cueHeight)

	active, ok := b.ctrl.ActiveCue().Get()
	if !ok {
		return lines
	}

	wrapped := wrap.String(wordwrap.String(active.Text, width), width)
	text := strings.Split(wrapped, "\n")
	if len(text) > cueHeight {
		text = text[len(text)-cueHeight:]
	}

	offset := cueHeight - len(text)
	for i, line := range text {
		lines[offset+i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, cueStyle.Render(line))
	}
	return lines
}

func (b *statefulBubble) viewSeekBar(width int) string {
	bar := b.ctrl.SeekBar()
	props := bar.Props()

	filled := int(math.Round(bar.Config().Percent() / 100 * float64(width-1)))
	filled = min(max(filled, 0), width-1)

	thumb := trackStyle
	for _, s := range thumbStyles {
		if slider.Check(s.when, props) {
			thumb = s.style
			break
		}
	}

	return trackStyle.Render(strings.Repeat("━", filled)) +
		thumb.Render("●") +
		restStyle.Render(strings.Repeat("─", width-1-filled))
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	errorMsg := wrap.String(errorBody, b.contentWidth())
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Playback failed:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
