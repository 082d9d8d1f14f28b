package match

import (
	"strings"

	"frid/internal/catalog"
)

// Plot matches carry far more identifying signal than title matches.
const (
	plotWeight  = 0.8
	titleWeight = 0.2
)

// Score produces a combined 0-100 score expressing how well a transcript
// matches one episode record.
//
// The transcript is compared against the episode summary (plot score) and
// title (title score); the result is trunc(0.8*plot + 0.2*title). When a
// non-blank auxiliary summary is supplied, the plot score is the better of
// transcript-vs-summary and auxiliary-vs-summary, so a good condensed summary
// can only improve the match.
func Score(transcript, auxSummary string, episode catalog.Episode) int {
	plot := TokenSetRatio(transcript, episode.Summary)
	if strings.TrimSpace(auxSummary) != "" {
		if s := TokenSetRatio(auxSummary, episode.Summary); s > plot {
			plot = s
		}
	}
	title := TokenSetRatio(transcript, episode.Title)
	return int(plotWeight*float64(plot) + titleWeight*float64(title))
}
