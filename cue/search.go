package cue

import (
	"sort"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Search returns the cues whose text fuzzily contains query, closest matches
// first. Ties keep sequence order.
func Search(cues []Cue, query string) []Cue {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	type match struct {
		cue      Cue
		distance int
	}

	var matches []match
	for _, c := range cues {
		text := strings.ToLower(strings.ReplaceAll(c.Text, "\n", " "))
		if !fuzzy.MatchFold(query, text) {
			continue
		}
		matches = append(matches, match{cue: c, distance: levenshtein.Distance(query, text)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	out := make([]Cue, len(matches))
	for i, m := range matches {
		out[i] = m.cue
	}
	return out
}
