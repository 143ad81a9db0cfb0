package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the clinic terminal client.
//
// Fields:
//   - APIBaseURL: root of the clinic REST API, e.g. http://localhost:8000/api/.
//   - DatabasePath: sqlite file holding the persisted session.
//   - RequestTimeout: per-request HTTP timeout; zero disables it.
//   - LogLevel: debug, info, warn or error.
//   - LogFile: rotating log file; empty means stderr.
//   - LogBackend: "slog" or "zap".
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
	LogFile        string
	LogBackend     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/"
	c.DatabasePath = "clinic.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
	c.LogFile = ""
	c.LogBackend = "slog"
}

// LoadConfig builds a Config from defaults, then the environment (a .env file
// in the working directory is loaded first when present), then the JSON file
// named by -c/-config, then command-line flags. Later sources win.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	return cfg, nil
}
