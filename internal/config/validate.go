package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOMDB(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOMDB() error {
	if c.OMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/frid/config.toml"
		}
		return fmt.Errorf("omdb.api_key is required. Set OMDB_API_KEY env var or edit %s (create with 'frid config init')", defaultPath)
	}
	if c.OMDB.SeriesID == "" {
		return errors.New("omdb.series_id must be set")
	}
	if c.OMDB.SeasonCount < 1 || c.OMDB.SeasonCount > 100 {
		return errors.New("omdb.season_count must be between 1 and 100")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.TTLDays < 0 {
		return errors.New("catalog.ttl_days must not be negative")
	}
	if c.Catalog.FetchWorkers < 1 || c.Catalog.FetchWorkers > 32 {
		return errors.New("catalog.fetch_workers must be between 1 and 32")
	}
	if c.Catalog.RequestDelayMS < 0 {
		return errors.New("catalog.request_delay_ms must not be negative")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.MinScore < 0 || c.Matching.MinScore > 100 {
		return errors.New("matching.min_score must be between 0 and 100")
	}
	if c.Matching.TopN < 1 {
		return errors.New("matching.top_n must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
