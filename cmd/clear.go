package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/subplay/subplay/icon"
	"github.com/subplay/subplay/player"
	"github.com/subplay/subplay/util"
	"github.com/subplay/subplay/where"
)

// clearTarget defines a resource eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

// remove deletes the path returned by location; a missing path is already clear.
func remove(location func() string) func() error {
	return func() error {
		if err := util.Delete(location()); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
}

// sweep only removes sockets no running player listens on.
func sweep() error {
	_, err := player.SweepSockets(where.Temp())
	return err
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), remove(where.Cache)},
	{"history file", "history", mo.Some("s"), remove(where.History)},
	{"logs directory", "logs", mo.Some("l"), remove(where.Logs)},
	{"stale sockets", "temp", mo.None[string](), sweep},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached positions, logs and leftover sockets",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
