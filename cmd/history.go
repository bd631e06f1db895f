package cmd

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/subplay/subplay/history"
	"github.com/subplay/subplay/icon"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	historyCmd.Flags().BoolP("all", "a", false, "Include files that were watched to the end")

	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved playback positions",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		positions := lo.Values(saved)
		if !lo.Must(cmd.Flags().GetBool("all")) {
			positions = lo.Filter(positions, func(p *history.Position, _ int) bool {
				return p.Resumable()
			})
		}

		sort.Slice(positions, func(i, j int) bool {
			return positions[i].UpdatedAt.After(positions[j].UpdatedAt)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(positions))
			return
		}

		for _, p := range positions {
			mark := icon.Get(icon.Pause)
			if p.Finished() {
				mark = icon.Get(icon.Success)
			}

			cmd.Printf("%s %s\n", mark, p)
		}
	},
}

func init() {
	historyCmd.AddCommand(historyForgetCmd)
}

var historyForgetCmd = &cobra.Command{
	Use:   "forget [file]",
	Short: "Drop the saved position of a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(history.Remove(args[0]))
		cmd.Printf("%s forgot %s\n", icon.Get(icon.Success), args[0])
	},
}
