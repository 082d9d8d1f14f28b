package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"frid/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the episode catalog cache",
		Long: `Inspect and manage the episode catalog cache.

The catalog cache stores episode records fetched from OMDb so repeated
identification runs skip the network. Entries expire on a time-to-live
policy and are refetched transparently.

Commands:
  refresh  - Rebuild the catalog from OMDb (honors the cache unless --force)
  show     - List the cached episode records
  clear    - Delete the cached catalog`,
	}

	catalogCmd.AddCommand(newCatalogRefreshCommand(ctx))
	catalogCmd.AddCommand(newCatalogShowCommand(ctx))
	catalogCmd.AddCommand(newCatalogClearCommand(ctx))

	return catalogCmd
}

func newCatalogRefreshCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Populate the episode catalog from OMDb",
		Long:  "Fetch season listings and episode details from OMDb and persist them. Without --force a fresh cache is served as-is.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher, err := ctx.catalogFetcher()
			if err != nil {
				return err
			}
			sink := newProgressSink(cmd.ErrOrStderr())

			var cat *catalog.Catalog
			if force {
				cat, err = fetcher.Refresh(cmd.Context(), sink)
			} else {
				cat, err = fetcher.GetCatalog(cmd.Context(), sink)
			}
			if err != nil {
				return fmt.Errorf("refresh catalog: %w", err)
			}

			store, err := ctx.catalogStore()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Catalog holds %d episodes\n", cat.Len())
			fmt.Fprintf(out, "Cache file: %s\n", store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Rebuild even when the cache is still fresh")
	return cmd
}

func newCatalogShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the cached episode records",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.catalogStore()
			if err != nil {
				return err
			}
			cat := store.Load()
			episodes := cat.Episodes()

			if jsonOutput {
				if episodes == nil {
					episodes = []catalog.Episode{}
				}
				return writeJSON(cmd, episodes)
			}

			out := cmd.OutOrStdout()
			if len(episodes) == 0 {
				fmt.Fprintln(out, "Episode catalog: empty")
				return nil
			}

			freshness := "stale"
			if store.IsFresh() {
				freshness = "fresh"
			}
			fmt.Fprintf(out, "Episode catalog: %d episodes (%s)\n\n", len(episodes), freshness)

			rows := make([][]string, 0, len(episodes))
			for _, ep := range episodes {
				rows = append(rows, []string{
					ep.Label(),
					ep.Title,
					strconv.FormatBool(ep.Summary != ""),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Episode", "Title", "Summary"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the catalog as JSON")
	return cmd
}

func newCatalogClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the cached catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.catalogStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return fmt.Errorf("clear catalog cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Episode catalog cache cleared")
			return nil
		},
	}
}
