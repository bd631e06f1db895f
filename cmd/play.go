package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subplay/subplay/key"
	"github.com/subplay/subplay/tui"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().BoolP("resume", "r", false, "Continue from the position saved in the history")
	lo.Must0(viper.BindPFlag(key.PlayerResume, playCmd.Flags().Lookup("resume")))

	playCmd.Flags().Bool("no-subtitles", false, "Do not look for subtitle files next to the media")
	playCmd.Flags().Bool("no-chapters", false, "Do not mark cue starts as mpv chapters")
}

// playCmd opens a media file in mpv and drives it from the terminal.
var playCmd = &cobra.Command{
	Use:     "play [file]",
	Short:   "Play a media file with cue navigation",
	Args:    cobra.ExactArgs(1),
	Example: "  subplay play ./movie.mkv",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("no-subtitles")) {
			viper.Set(key.SubtitlesEnable, false)
		}

		if lo.Must(cmd.Flags().GetBool("no-chapters")) {
			viper.Set(key.PlayerChapters, false)
		}

		CheckDependencies()

		handleErr(tui.Run(tui.NewOptions(args[0])))
	},
}
