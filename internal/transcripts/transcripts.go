package transcripts

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Entry is one transcribed media file. Summary is optional; when present
// it is a condensed description used as an auxiliary matching signal.
type Entry struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary,omitempty"`
}

// Set holds the transcripts keyed by media filename.
type Set struct {
	entries map[string]Entry
}

// Load reads and parses a transcripts JSON file.
func Load(path string) (*Set, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcripts file: %w", err)
	}
	entries := make(map[string]Entry)
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("parse transcripts file %s: %w", path, err)
	}
	set := &Set{entries: make(map[string]Entry, len(entries))}
	for name, entry := range entries {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set.entries[name] = entry
	}
	return set, nil
}

// Names returns the media filenames in sorted order so output is stable
// across runs.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the entry for a filename.
func (s *Set) Get(name string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	entry, ok := s.entries[name]
	return entry, ok
}

// Len reports the number of entries.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
