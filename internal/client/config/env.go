package config

import (
	"fmt"
	"strconv"
	"time"
)

// Environment variables recognised by parseEnv.
const (
	EnvAPIURL         = "CLINIC_API_URL"
	EnvDatabasePath   = "CLINIC_DB_PATH"
	EnvRequestTimeout = "CLINIC_REQUEST_TIMEOUT"
	EnvLogLevel       = "CLINIC_LOG_LEVEL"
	EnvLogFile        = "CLINIC_LOG_FILE"
	EnvLogBackend     = "CLINIC_LOG_BACKEND"
)

// parseEnv overlays cfg with any CLINIC_* variables that are set.
// CLINIC_REQUEST_TIMEOUT accepts a Go duration ("20s") or whole seconds ("20").
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup(EnvDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogBackend); ok && v != "" {
		cfg.LogBackend = v
	}
	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
