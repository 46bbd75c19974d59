package config

import (
	"errors"
	"fmt"
)

var validContainers = map[string]struct{}{
	"mkv": {},
	"mp4": {},
	"mov": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Editing.HistoryDepth <= 0 {
		return errors.New("editing.history_depth must be positive")
	}
	if c.Cache.FrameCapacity <= 0 {
		return errors.New("cache.frame_capacity must be positive")
	}
	if _, ok := validContainers[c.Export.OutputContainer]; !ok {
		return fmt.Errorf("export.output_container must be one of mkv, mp4, mov (got %q)", c.Export.OutputContainer)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
