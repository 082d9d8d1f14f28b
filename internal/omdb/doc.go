// Package omdb provides a read-only client for the OMDb API.
//
// Two query shapes are used: a season listing (episode numbers plus IMDb IDs)
// and per-episode details (title plus plot). OMDb reports application-level
// failures as HTTP 200 responses carrying Response = "False"; the client
// surfaces those as ordinary errors.
package omdb
