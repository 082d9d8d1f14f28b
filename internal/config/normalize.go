package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOMDB()
	c.normalizeCatalog()
	c.normalizeMatching()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOMDB() {
	c.OMDB.APIKey = strings.TrimSpace(c.OMDB.APIKey)
	if c.OMDB.APIKey == "" {
		if value, ok := os.LookupEnv("OMDB_API_KEY"); ok {
			c.OMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.OMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.OMDB.BaseURL), "/")
	if c.OMDB.BaseURL == "" {
		c.OMDB.BaseURL = defaultOMDBBaseURL
	}
	c.OMDB.SeriesID = strings.TrimSpace(c.OMDB.SeriesID)
	if c.OMDB.SeriesID == "" {
		c.OMDB.SeriesID = defaultSeriesID
	}
	c.OMDB.SeriesName = strings.TrimSpace(c.OMDB.SeriesName)
	if c.OMDB.SeriesName == "" {
		c.OMDB.SeriesName = defaultSeriesName
	}
	if c.OMDB.SeasonCount == 0 {
		c.OMDB.SeasonCount = defaultSeasonCount
	}
}

func (c *Config) normalizeCatalog() {
	if c.Catalog.TTLDays == 0 {
		c.Catalog.TTLDays = defaultTTLDays
	}
	if c.Catalog.FetchWorkers == 0 {
		c.Catalog.FetchWorkers = defaultFetchWorkers
	}
	if c.Catalog.RequestDelayMS == 0 {
		c.Catalog.RequestDelayMS = defaultRequestDelayMS
	}
}

func (c *Config) normalizeMatching() {
	if c.Matching.TopN == 0 {
		c.Matching.TopN = defaultTopN
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
