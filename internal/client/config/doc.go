// Package config loads runtime configuration for the ESS command-line
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (JSON, YAML or TOML, by extension) selected with
//     -c or -config.
//  3. Environment variables prefixed with ESS_, e.g. ESS_API_URL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string          base URL of the ESS API
//	-f string          base URL of employee document files
//	-d string          path of the local SQLite database
//	-i int             chat poll interval (seconds)
//	-t int             request timeout (seconds)
//	-o string          directory for downloads and payslips
//	-l string          log level: debug, info, warn, error
//	-log-format string text, json or console
//	-log-file string   write logs to this file instead of stderr
//	-theme string      device theme preference: light or dark
//	-locale string     device locale, e.g. dv_MV
//
// # File schema
//
// Durations may be strings like "5s" or integer nanoseconds:
//
//	{
//	  "api_url": "https://hros.example.mv/ess",
//	  "file_url": "https://hros.example.mv/assets/document",
//	  "chat_poll_interval": "5s",
//	  "request_timeout": "15s",
//	  "log_format": "console"
//	}
package config
