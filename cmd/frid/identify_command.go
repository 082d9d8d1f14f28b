package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"frid/internal/match"
	"frid/internal/transcripts"
)

type matchView struct {
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
	Title   string `json:"title"`
	Score   int    `json:"score"`
}

type identifyView struct {
	File    string      `json:"file"`
	Matches []matchView `json:"matches"`
}

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	var topN int
	var minScore int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "identify <transcripts-file>",
		Short: "Rank episodes against each transcript in a transcripts JSON file",
		Long: `Rank every cataloged episode against each transcript and report the
best candidates per media file.

The transcripts file is a JSON object keyed by media filename; each entry
carries the transcript text and an optional condensed summary used as an
auxiliary matching signal. The episode catalog is served from the local
cache and refreshed from OMDb when stale.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("top-n") {
				topN = cfg.Matching.TopN
			}
			if !cmd.Flags().Changed("min-score") {
				minScore = cfg.Matching.MinScore
			}
			if topN < 1 {
				return fmt.Errorf("top-n must be at least 1, got %d", topN)
			}
			if minScore < 0 || minScore > 100 {
				return fmt.Errorf("min-score must be between 0 and 100, got %d", minScore)
			}

			set, err := transcripts.Load(args[0])
			if err != nil {
				return err
			}

			fetcher, err := ctx.catalogFetcher()
			if err != nil {
				return err
			}
			sink := newProgressSink(cmd.ErrOrStderr())
			cat, err := fetcher.GetCatalog(cmd.Context(), sink)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			if cat.IsEmpty() {
				return fmt.Errorf("episode catalog is empty; check the OMDb configuration and run `frid catalog refresh`")
			}

			views := make([]identifyView, 0, set.Len())
			for _, name := range set.Names() {
				entry, _ := set.Get(name)
				ranked := match.Rank(entry.Transcript, entry.Summary, cat)
				views = append(views, identifyView{
					File:    name,
					Matches: filterMatches(ranked, minScore, topN),
				})
			}

			if jsonOutput {
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			for i, view := range views {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, view.File)
				if len(view.Matches) == 0 {
					fmt.Fprintf(out, "  no match at or above score %d\n", minScore)
					continue
				}
				rows := make([][]string, 0, len(view.Matches))
				for rank, m := range view.Matches {
					rows = append(rows, []string{
						strconv.Itoa(rank + 1),
						fmt.Sprintf("S%02dE%02d", m.Season, m.Episode),
						m.Title,
						strconv.Itoa(m.Score),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Episode", "Title", "Score"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
				))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&topN, "top-n", 0, "Maximum matches to report per transcript (default from config)")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "Minimum score for a match to be reported (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	return cmd
}

// filterMatches applies the caller-side confidence threshold and top-N cut
// to an already ranked match list.
func filterMatches(ranked []match.Match, minScore, topN int) []matchView {
	views := make([]matchView, 0, topN)
	for _, m := range ranked {
		if m.Score < minScore {
			continue
		}
		views = append(views, matchView{
			Season:  m.Episode.Season,
			Episode: m.Episode.Episode,
			Title:   m.Episode.Title,
			Score:   m.Score,
		})
		if len(views) == topN {
			break
		}
	}
	return views
}
