package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"frid/internal/logging"
)

// Store owns the persisted representation of the catalog and its staleness
// policy. Loading never fails: an absent or corrupt file yields an empty
// catalog, which callers must treat as "needs refresh".
type Store struct {
	path   string
	ttl    time.Duration
	logger *slog.Logger
}

// NewStore creates a store for the catalog file at path with the given TTL.
func NewStore(path string, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		ttl:    ttl,
		logger: logging.NewComponentLogger(logger, "catalog.store"),
	}
}

// Path returns the location of the persisted catalog file.
func (s *Store) Path() string {
	return s.path
}

// LockPath returns the file used to serialize refreshes across processes.
func (s *Store) LockPath() string {
	return s.path + ".lock"
}

// ModTime returns the persisted catalog's last modification time, if the file exists.
func (s *Store) ModTime() (time.Time, bool) {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// IsFresh reports whether a persisted catalog exists and its age is strictly
// below the TTL. No network access.
func (s *Store) IsFresh() bool {
	modTime, ok := s.ModTime()
	if !ok {
		return false
	}
	return time.Since(modTime) < s.ttl
}

// Load deserializes the persisted catalog. On any parse failure or absent
// file it returns an empty catalog, never an error.
func (s *Store) Load() *Catalog {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.WarnWithContext(s.logger, "failed to read catalog cache", "catalog_read_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "cache will be rebuilt from the network"),
				logging.String(logging.FieldImpact, "next lookup triggers a full refresh"))
		}
		return New()
	}

	var episodes []Episode
	if err := json.Unmarshal(data, &episodes); err != nil {
		logging.WarnWithContext(s.logger, "failed to parse catalog cache", "catalog_parse_failed",
			logging.Error(err),
			logging.String("path", s.path),
			logging.String(logging.FieldErrorHint, "cache will be rebuilt from the network"),
			logging.String(logging.FieldImpact, "next lookup triggers a full refresh"))
		return New()
	}

	cat := FromEpisodes(episodes)
	s.logger.Debug("loaded catalog cache",
		logging.Int("episode_count", cat.Len()),
		logging.String("path", s.path))
	return cat
}

// Save serializes the catalog and replaces the persisted file atomically via
// a temp-file-then-rename write.
func (s *Store) Save(cat *Catalog) error {
	data, err := json.MarshalIndent(cat.Episodes(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.logger.Debug("persisted catalog cache",
		logging.Int("episode_count", cat.Len()),
		logging.String("path", s.path))
	return nil
}

// Clear removes the persisted catalog file.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove catalog cache: %w", err)
	}
	return nil
}
