package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/physiofit/clinic/internal/flagx"
	"github.com/physiofit/clinic/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Missing or empty
// fields leave the corresponding Config value untouched.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	DatabasePath   string          `json:"database_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       string          `json:"log_level"`
	LogFile        string          `json:"log_file"`
	LogBackend     string          `json:"log_backend"`
}

// parseJson overlays cfg with the file named by -c/-config in args.
// It is a no-op when no file was given.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	return nil
}
