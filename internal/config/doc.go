// Package config loads, normalizes, and validates avmark configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// AVMARK_LABEL_LANGUAGE. Always obtain settings through this package so
// commands receive canonical output formats and clear validation errors.
package config
