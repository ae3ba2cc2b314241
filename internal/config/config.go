// Package config loads the demonstration's settings from the environment.
package config

import (
	"fmt"

	"github.com/couchbase/tools-sum/envvar"
	"github.com/couchbase/tools-sum/internal/report"
	"github.com/couchbase/tools-sum/log"
)

const (
	// EnvLogLevel names the minimum level written to stderr.
	EnvLogLevel = "SUMARRAY_LOG_LEVEL"

	// EnvFormat selects between the "text" and "json" output formats.
	EnvFormat = "SUMARRAY_FORMAT"
)

// Config holds the settings for a single run.
type Config struct {
	LogLevel log.Level
	Format   report.Format
}

// Default returns the configuration used when no environment variables are set.
func Default() Config {
	return Config{LogLevel: log.LevelWarning, Format: report.FormatText}
}

// Load returns the default configuration overridden by any environment variables which are set.
//
// NOTE: An invalid log level falls back to the default, an unknown format is an error since it changes what's written
// to stdout.
func Load() (Config, error) {
	cfg := Default()

	if level, ok := envvar.GetLevel(EnvLogLevel); ok {
		cfg.LogLevel = level
	}

	if name, ok := envvar.GetString(EnvFormat); ok && name != "" {
		format, err := report.ParseFormat(name)
		if err != nil {
			return Config{}, fmt.Errorf("invalid value for %s: %w", EnvFormat, err)
		}

		cfg.Format = format
	}

	return cfg, nil
}
