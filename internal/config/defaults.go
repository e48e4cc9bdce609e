package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Manifest defaults
	DefaultJSONPath = "./webpack-assets.json"
	DefaultSiteURL  = ""

	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	// EnvPrefix is the prefix of environment variables (WEBPACKASSETS_JSON_PATH, ...)
	EnvPrefix = "WEBPACKASSETS"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".webpackassets"
	}
	return filepath.Join(home, ".webpackassets")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		JSONPath: DefaultJSONPath,
		SiteURL:  DefaultSiteURL,
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
