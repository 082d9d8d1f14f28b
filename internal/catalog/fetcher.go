package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"frid/internal/logging"
	"frid/internal/omdb"
)

// MetadataClient is the slice of the OMDb client the fetcher depends on.
type MetadataClient interface {
	Season(ctx context.Context, seriesID string, season int) (*omdb.SeasonListing, error)
	EpisodeDetails(ctx context.Context, imdbID string) (*omdb.EpisodeDetails, error)
}

// FetcherOptions configures a catalog refresh.
type FetcherOptions struct {
	// SeriesID is the IMDb identifier of the series.
	SeriesID string
	// SeasonCount is the number of seasons to discover.
	SeasonCount int
	// Workers bounds the episode-detail fetch concurrency. Defaults to 5.
	Workers int
	// RequestDelay is the minimum spacing between metadata source requests,
	// shared across all workers. Zero disables pacing.
	RequestDelay time.Duration
}

const defaultWorkers = 5

// Fetcher returns a ready-to-use catalog, preferring the persisted cache and
// falling back to a full network rebuild.
type Fetcher struct {
	store   *Store
	client  MetadataClient
	opts    FetcherOptions
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewFetcher creates a fetcher over the given store and metadata client.
func NewFetcher(store *Store, client MetadataClient, opts FetcherOptions, logger *slog.Logger) *Fetcher {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	limit := rate.Inf
	if opts.RequestDelay > 0 {
		limit = rate.Every(opts.RequestDelay)
	}
	return &Fetcher{
		store:   store,
		client:  client,
		opts:    opts,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logging.NewComponentLogger(logger, "catalog.fetcher"),
	}
}

// GetCatalog returns the current catalog: the persisted one when it is fresh
// and non-empty, otherwise a full network rebuild. Fetch failures degrade to a
// smaller or empty catalog; the only returned errors are cancellation and
// refresh-lock failures.
func (f *Fetcher) GetCatalog(ctx context.Context, sink ProgressSink) (*Catalog, error) {
	if f.store.IsFresh() {
		if cat := f.store.Load(); !cat.IsEmpty() {
			f.logger.Debug("serving catalog from cache", logging.Int("episode_count", cat.Len()))
			return cat, nil
		}
	}
	return f.refresh(ctx, sink, true)
}

// Refresh rebuilds the catalog from the network regardless of cache freshness.
func (f *Fetcher) Refresh(ctx context.Context, sink ProgressSink) (*Catalog, error) {
	return f.refresh(ctx, sink, false)
}

func (f *Fetcher) refresh(ctx context.Context, sink ProgressSink, recheck bool) (*Catalog, error) {
	if sink == nil {
		sink = NopSink()
	}

	// One refresh at a time across processes; prevents parallel frid
	// invocations from both hammering OMDb and racing on the cache file.
	lock := flock.New(f.store.LockPath())
	if err := lock.Lock(); err != nil {
		return New(), fmt.Errorf("acquire refresh lock: %w", err)
	}
	defer lock.Unlock()

	// Another process may have finished a refresh while we waited.
	if recheck && f.store.IsFresh() {
		if cat := f.store.Load(); !cat.IsEmpty() {
			f.logger.Debug("catalog refreshed by another process", logging.Int("episode_count", cat.Len()))
			return cat, nil
		}
	}

	logger := f.logger.With(logging.String(logging.FieldRefreshID, uuid.NewString()))
	logger.Info("refreshing episode catalog",
		logging.String("series_id", f.opts.SeriesID),
		logging.Int("season_count", f.opts.SeasonCount))

	items, err := f.discoverSeasons(ctx, sink, logger)
	if err != nil {
		return New(), err
	}

	cat, err := f.fetchDetails(ctx, sink, logger, items)
	if err != nil {
		return New(), err
	}

	if cat.IsEmpty() {
		// Never persist an empty catalog over previously good data.
		logging.WarnWithContext(logger, "catalog refresh fetched no episodes", "catalog_refresh_empty",
			logging.String(logging.FieldErrorHint, "verify omdb api key and network connectivity"),
			logging.String(logging.FieldImpact, "matching will produce no results"))
		return cat, nil
	}

	if err := f.store.Save(cat); err != nil {
		logging.WarnWithContext(logger, "failed to persist catalog", "catalog_persist_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check cache directory permissions"),
			logging.String(logging.FieldImpact, "next run repeats the full refresh"))
		return cat, nil
	}

	logger.Info("catalog refresh complete", logging.Int("episode_count", cat.Len()))
	return cat, nil
}

// detailItem is one episode-detail fetch unit.
type detailItem struct {
	season int
	ref    omdb.EpisodeRef
}

// discoverSeasons fetches each season listing sequentially. A failed season
// is logged and contributes zero episodes.
func (f *Fetcher) discoverSeasons(ctx context.Context, sink ProgressSink, logger *slog.Logger) ([]detailItem, error) {
	sink.Describe("Discovering seasons")

	var items []detailItem
	for season := 1; season <= f.opts.SeasonCount; season++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		listing, err := f.client.Season(ctx, f.opts.SeriesID, season)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logging.WarnWithContext(logger, "season discovery failed", "season_fetch_failed",
				logging.Error(err),
				logging.Int(logging.FieldSeason, season),
				logging.String(logging.FieldErrorHint, "season is skipped; rerun refresh to retry"),
				logging.String(logging.FieldImpact, "episodes of this season cannot be matched"))
			continue
		}
		for _, ref := range listing.Episodes {
			items = append(items, detailItem{season: season, ref: ref})
		}
		logger.Debug("season discovered",
			logging.Int(logging.FieldSeason, season),
			logging.Int("episode_count", len(listing.Episodes)))
	}
	return items, nil
}

// fetchDetails runs the bounded worker pool over the collected listing items
// and merges the results single-threaded after the pool drains.
func (f *Fetcher) fetchDetails(ctx context.Context, sink ProgressSink, logger *slog.Logger, items []detailItem) (*Catalog, error) {
	guard := &progressGuard{sink: sink}
	guard.describe("Fetching episode details")
	guard.setTotal(len(items))

	jobs := make(chan detailItem)
	results := make(chan Episode, len(items))

	var wg sync.WaitGroup
	for i := 0; i < f.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.detailWorker(ctx, jobs, results, guard, logger)
		}()
	}

feed:
	for _, item := range items {
		select {
		case jobs <- item:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	cat := New()
	for ep := range results {
		if err := cat.Add(ep); err != nil {
			logging.WarnWithContext(logger, "dropping unusable episode record", "episode_record_rejected",
				logging.Error(err),
				logging.Int(logging.FieldSeason, ep.Season),
				logging.Int(logging.FieldEpisode, ep.Episode))
		}
	}

	if err := ctx.Err(); err != nil {
		return New(), err
	}
	return cat, nil
}

func (f *Fetcher) detailWorker(ctx context.Context, jobs <-chan detailItem, results chan<- Episode, guard *progressGuard, logger *slog.Logger) {
	for item := range jobs {
		if err := f.limiter.Wait(ctx); err != nil {
			return
		}
		details, err := f.client.EpisodeDetails(ctx, item.ref.IMDBID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.WarnWithContext(logger, "episode detail fetch failed", "episode_fetch_failed",
				logging.Error(err),
				logging.Int(logging.FieldSeason, item.season),
				logging.Int(logging.FieldEpisode, item.ref.Number),
				logging.String(logging.FieldErrorHint, "episode is dropped; rerun refresh to retry"),
				logging.String(logging.FieldImpact, "this episode cannot be matched"))
			continue
		}
		title := details.Title
		if title == "" {
			title = item.ref.Title
		}
		results <- Episode{
			Season:  item.season,
			Episode: item.ref.Number,
			Title:   title,
			Summary: details.Plot,
		}
		guard.advance(1)
	}
}

// progressGuard serializes sink access and owns the shared completion
// counter; concurrent workers must never race or double-count on it.
type progressGuard struct {
	mu        sync.Mutex
	sink      ProgressSink
	completed int
}

func (g *progressGuard) describe(message string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sink.Describe(message)
}

func (g *progressGuard) setTotal(total int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sink.SetTotal(total)
}

func (g *progressGuard) advance(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.completed += n
	g.sink.Advance(n)
}
