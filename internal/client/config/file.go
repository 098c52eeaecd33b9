package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key looked up in the environment.
const EnvPrefix = "ESS"

// parseFile overlays cfg with the config file at path (when path is not
// empty) and with ESS_* environment variables. Environment values win over
// the file. Only keys that are set are applied.
//
// It panics when the file cannot be read or parsed.
func parseFile(cfg *Config, path string) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			panic(err)
		}
	}

	str := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	str("api_url", &cfg.APIURL)
	str("file_url", &cfg.FileURL)
	str("db_path", &cfg.DBPath)
	str("download_dir", &cfg.DownloadDir)
	str("log_level", &cfg.LogLevel)
	str("log_format", &cfg.LogFormat)
	str("log_file", &cfg.LogFile)
	str("device_theme", &cfg.DeviceTheme)
	str("device_locale", &cfg.DeviceLocale)

	if v.IsSet("chat_poll_interval") {
		cfg.ChatPollInterval = v.GetDuration("chat_poll_interval")
	}
	if v.IsSet("request_timeout") {
		cfg.RequestTimeout = v.GetDuration("request_timeout")
	}
}
