package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/subplay/subplay/color"
	"github.com/subplay/subplay/cue"
	"github.com/subplay/subplay/duration"
	"github.com/subplay/subplay/filesystem"
	"github.com/subplay/subplay/style"
	"github.com/subplay/subplay/subtitle"
)

func init() {
	rootCmd.AddCommand(cuesCmd)

	cuesCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	cuesCmd.Flags().StringP("grep", "g", "", "Only list cues whose text fuzzily matches the query")

	cuesCmd.SetOut(os.Stdout)
}

var cuesCmd = &cobra.Command{
	Use:   "cues [file]",
	Short: "List the subtitle cues of a media or subtitle file",
	Long: `List the subtitle cues subplay navigates between.

The argument is either a subtitle file or a media file. For a media file the
sibling subtitle is resolved the same way the player does it.`,
	Args:    cobra.ExactArgs(1),
	Example: "  subplay cues ./movie.mkv --grep 'good morning'",
	Run: func(cmd *cobra.Command, args []string) {
		filesystem.SetReadOnly()

		cues, err := loadCues(subtitle.NewLoader(), args[0])
		handleErr(err)

		// Measured on the whole file so the clock layout does not depend on the query.
		length := mediaLength(cues)

		if query := lo.Must(cmd.Flags().GetString("grep")); query != "" {
			cues = cue.Search(cues, query)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(cues))
			return
		}

		for _, c := range cues {
			cmd.Println(formatCue(c, length))
		}
	},
}

// loadCues reads path directly when it is a subtitle and resolves its sibling otherwise.
func loadCues(loader *subtitle.Loader, path string) ([]cue.Cue, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !lo.Contains(loader.Extensions, ext) {
		resolved, ok := loader.Resolve(path)
		if !ok {
			return nil, fmt.Errorf("no subtitles found next to %s", path)
		}

		path = resolved
	}

	cues, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	if cues == nil {
		return nil, errors.New("file not found: " + path)
	}

	return cues, nil
}

// mediaLength is the latest cue end, the reference for the time layout.
func mediaLength(cues []cue.Cue) float64 {
	return lo.MaxBy(cues, func(a, b cue.Cue) bool {
		return a.EndTime > b.EndTime
	}).EndTime
}

func formatCue(c cue.Cue, length float64) string {
	return fmt.Sprintf(
		"%s %s %s",
		style.Fg(color.Purple)(fmt.Sprintf("%4d", c.ID)),
		style.Faint(duration.Prettify(c.StartTime, length)+" → "+duration.Prettify(c.EndTime, length)),
		strings.ReplaceAll(c.Text, "\n", style.Faint(" ⏎ ")),
	)
}

func init() {
	cuesCmd.AddCommand(cuesSchemaCmd)
}

var cuesSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the cues --json output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return filepath.Base(t.PkgPath()) + "." + t.Name()
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect([]cue.Cue{})))
	},
}
