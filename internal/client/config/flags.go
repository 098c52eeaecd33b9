package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/hros-ess/internal/flagx"
)

var knownFlags = []string{
	"-a", "-f", "-d", "-i", "-t", "-o", "-l",
	"-log-format", "-log-file", "-theme", "-locale",
}

// parseFlags populates Config fields from command-line flags. Arguments
// other than the known flags are ignored, see flagx.FilterArgs.
//
// It panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "base URL of the ESS API")
	fs.StringVar(&cfg.FileURL, "f", cfg.FileURL, "base URL of document files")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local database")
	pollInterval := fs.Int("i", int(cfg.ChatPollInterval.Seconds()), "chat poll interval (in seconds)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "download directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text, json or console")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file")
	fs.StringVar(&cfg.DeviceTheme, "theme", cfg.DeviceTheme, "device theme preference")
	fs.StringVar(&cfg.DeviceLocale, "locale", cfg.DeviceLocale, "device locale")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Intervals are only touched when given, so sub-second values from the
	// file survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.ChatPollInterval = time.Duration(*pollInterval) * time.Second
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
