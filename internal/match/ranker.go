package match

import (
	"sort"

	"frid/internal/catalog"
)

// Match is a transient (episode, score) pair produced by Rank.
type Match struct {
	Episode catalog.Episode
	Score   int
}

// Rank scores the transcript against every record in the catalog and returns
// the full sequence ordered best-first. Equal scores keep the catalog's
// (season, episode) order. No filtering is applied; thresholds and top-N cuts
// are the caller's concern.
func Rank(transcript, auxSummary string, cat *catalog.Catalog) []Match {
	episodes := cat.Episodes()
	matches := make([]Match, 0, len(episodes))
	for _, episode := range episodes {
		matches = append(matches, Match{
			Episode: episode,
			Score:   Score(transcript, auxSummary, episode),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}
