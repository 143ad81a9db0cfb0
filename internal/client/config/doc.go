// Package config loads runtime configuration for the clinic terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: CLINIC_API_URL, CLINIC_DB_PATH, CLINIC_REQUEST_TIMEOUT,
//     CLINIC_LOG_LEVEL, CLINIC_LOG_FILE, CLINIC_LOG_BACKEND. A .env file in the
//     working directory is loaded into the environment first.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the clinic API
//	-d string   path of the local session database
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8000/api/",
//	  "database_path": "clinic.db",
//	  "request_timeout": "15s",
//	  "log_level": "info",
//	  "log_file": "clinic.log",
//	  "log_backend": "slog"
//	}
package config
