package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/subplay/subplay/controller"
	"github.com/subplay/subplay/history"
	"github.com/subplay/subplay/key"
	"github.com/subplay/subplay/log"
	"github.com/subplay/subplay/player"
	"github.com/subplay/subplay/subtitle"
	"github.com/subplay/subplay/util"
)

// Options is the runtime configuration of the player screen.
type Options struct {
	Path        string
	JumpSmall   float64
	JumpLarge   float64
	SliderWidth int
	ShowHelp    bool
	Controller  controller.Options
}

// NewOptions reads the player screen settings for path from the config.
func NewOptions(path string) *Options {
	return &Options{
		Path:        path,
		JumpSmall:   viper.GetFloat64(key.SeekJumpSmall),
		JumpLarge:   viper.GetFloat64(key.SeekJumpLarge),
		SliderWidth: viper.GetInt(key.TUISliderWidth),
		ShowHelp:    viper.GetBool(key.TUIShowHelp),
		Controller: controller.Options{
			ToggleDelay: time.Duration(viper.GetInt(key.SeekToggleDebounce)) * time.Millisecond,
			HideDelay:   time.Duration(viper.GetInt(key.SeekHideControlsAfter)) * time.Millisecond,
			Chapters:    viper.GetBool(key.PlayerChapters),
			StartAt:     mo.None[float64](),
		},
	}
}

// Run starts mpv, plays options.Path and blocks until the user quits.
func Run(options *Options) error {
	if viper.GetBool(key.PlayerResume) {
		options.Controller.StartAt = history.Resume(options.Path)
	}

	mpv := player.NewMPV(viper.GetString(key.PlayerBinary), viper.GetFloat64(key.PlayerVolumeMax))

	erase := util.PrintErasable("Starting " + viper.GetString(key.PlayerBinary) + "...")
	err := mpv.Start()
	erase()
	if err != nil {
		return err
	}
	defer util.Ignore(mpv.Close)

	var loader controller.SubtitleLoader
	if viper.GetBool(key.SubtitlesEnable) {
		loader = subtitle.NewLoader()
	}

	bubble := newBubble(options, mpv, loader)
	defer bubble.ctrl.Close()

	_, err = tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	bubble.saveHistory()
	return bubble.lastError
}

func (b *statefulBubble) saveHistory() {
	if !viper.GetBool(key.HistorySave) || b.state != playState {
		return
	}

	s := b.ctrl.State()
	if err := history.Save(b.src, s.CurrentTime, s.Duration); err != nil {
		log.Warnf("save history: %v", err)
	}
}
