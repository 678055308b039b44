// Package config loads, normalizes, and validates postrec configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// POSTREC_FFMPEG. The Config type centralizes every knob the CLI needs so the
// orchestrators receive sanitized paths and tool names in one pass.
package config
