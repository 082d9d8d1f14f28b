// Package config loads, normalizes, and validates frid's TOML configuration.
//
// Configuration is resolved from an explicit path, ~/.config/frid/config.toml,
// or ./frid.toml, in that order. Missing files fall back to repository
// defaults; the OMDb API key may also be supplied through the OMDB_API_KEY
// environment variable.
package config
