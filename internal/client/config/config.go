package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/flagx"
)

// Config holds runtime settings for the ESS CLI.
type Config struct {
	APIURL           string
	FileURL          string
	DBPath           string
	ChatPollInterval time.Duration
	RequestTimeout   time.Duration
	DownloadDir      string
	LogLevel         string
	LogFormat        string
	LogFile          string
	DeviceTheme      string
	DeviceLocale     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = client.DefaultBaseURL
	c.FileURL = client.DefaultFileURL
	c.DBPath = "hros-ess.db"
	c.ChatPollInterval = 5 * time.Second
	c.RequestTimeout = client.DefaultTimeout
	c.DownloadDir = "downloads"
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// LoadConfig constructs a Config from defaults, the config file, the
// environment and command-line flags, in that order. It panics on an
// unreadable config file or malformed flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, flagx.ConfigFileFlag(args))
	parseFlags(cfg, args)
	return cfg
}
