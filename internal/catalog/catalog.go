package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Key identifies an episode within the catalog.
type Key struct {
	Season  int
	Episode int
}

// Episode is one canonical unit of the catalog. Records are immutable once
// stored; the whole catalog is replaced on refresh, never patched.
type Episode struct {
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Key returns the (season, episode) identity of the record.
func (e Episode) Key() Key {
	return Key{Season: e.Season, Episode: e.Episode}
}

// Label returns the conventional SxxEyy form of the record's identity.
func (e Episode) Label() string {
	return fmt.Sprintf("S%02dE%02d", e.Season, e.Episode)
}

// Validate reports whether the record satisfies the catalog invariants.
func (e Episode) Validate() error {
	if e.Season <= 0 {
		return fmt.Errorf("season must be positive, got %d", e.Season)
	}
	if e.Episode <= 0 {
		return fmt.Errorf("episode must be positive, got %d", e.Episode)
	}
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("title must not be empty")
	}
	return nil
}

// Catalog is the full set of episode records for the series, keyed by
// (season, episode). One version exists at a time.
type Catalog struct {
	episodes map[Key]Episode
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{episodes: make(map[Key]Episode)}
}

// FromEpisodes builds a catalog from a record slice, dropping records that
// fail validation or duplicate an earlier (season, episode) pair.
func FromEpisodes(episodes []Episode) *Catalog {
	c := New()
	for _, ep := range episodes {
		_ = c.Add(ep)
	}
	return c
}

// Add inserts a record. Invalid records and duplicate keys are rejected.
func (c *Catalog) Add(ep Episode) error {
	if err := ep.Validate(); err != nil {
		return err
	}
	key := ep.Key()
	if _, exists := c.episodes[key]; exists {
		return fmt.Errorf("duplicate episode %s", ep.Label())
	}
	c.episodes[key] = ep
	return nil
}

// Get returns the record for the given key if present.
func (c *Catalog) Get(key Key) (Episode, bool) {
	if c == nil {
		return Episode{}, false
	}
	ep, found := c.episodes[key]
	return ep, found
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.episodes)
}

// IsEmpty reports whether the catalog holds no records.
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}

// Episodes returns all records ordered by (season, episode). Completion order
// during a refresh has no effect on this ordering.
func (c *Catalog) Episodes() []Episode {
	if c == nil {
		return nil
	}
	episodes := make([]Episode, 0, len(c.episodes))
	for _, ep := range c.episodes {
		episodes = append(episodes, ep)
	}
	sort.Slice(episodes, func(i, j int) bool {
		if episodes[i].Season != episodes[j].Season {
			return episodes[i].Season < episodes[j].Season
		}
		return episodes[i].Episode < episodes[j].Episode
	})
	return episodes
}
