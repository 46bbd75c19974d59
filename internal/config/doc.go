// Package config loads, normalizes, and validates cutline configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and centralizes every knob the CLI needs:
// data and log directories, editing history depth, frame cache capacity,
// export tool binaries, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
