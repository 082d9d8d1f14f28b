// Package catalog maintains the locally cached episode catalog for the series.
//
// The catalog is a set of episode records keyed by (season, episode). It is
// persisted as a single JSON file and replaced wholesale: a refresh fetches
// every season listing and episode detail from the metadata source, then
// overwrites the file atomically. Staleness is derived from the file's
// modification time against a configured TTL.
//
// A refresh that produces no episodes never overwrites previously cached data.
package catalog
