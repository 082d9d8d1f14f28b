package config

const (
	defaultCacheDir       = "~/.cache/frid"
	defaultLogDir         = "~/.local/share/frid/logs"
	defaultOMDBBaseURL    = "https://www.omdbapi.com"
	defaultSeriesID       = "tt0108778"
	defaultSeriesName     = "Friends"
	defaultSeasonCount    = 10
	defaultTTLDays        = 30
	defaultFetchWorkers   = 5
	defaultRequestDelayMS = 100
	defaultMinScore       = 50
	defaultTopN           = 3
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		OMDB: OMDB{
			BaseURL:     defaultOMDBBaseURL,
			SeriesID:    defaultSeriesID,
			SeriesName:  defaultSeriesName,
			SeasonCount: defaultSeasonCount,
		},
		Catalog: Catalog{
			TTLDays:        defaultTTLDays,
			FetchWorkers:   defaultFetchWorkers,
			RequestDelayMS: defaultRequestDelayMS,
		},
		Matching: Matching{
			MinScore: defaultMinScore,
			TopN:     defaultTopN,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
