package config

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/webpackassets/internal/domain"
	"github.com/quantmind-br/webpackassets/internal/utils"
)

// Ensure Config implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Config)(nil)

// Config represents the application configuration
type Config struct {
	JSONPath string        `mapstructure:"json_path" yaml:"json_path"`
	SiteURL  string        `mapstructure:"site_url" yaml:"site_url"`
	Logging  LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, replacing unusable values with defaults
func (c *Config) Validate() error {
	c.JSONPath = strings.TrimSpace(c.JSONPath)
	if c.JSONPath == "" {
		return fmt.Errorf("invalid %s: must not be empty", domain.ConfigKeyJSONPath)
	}
	c.JSONPath = utils.ExpandPath(c.JSONPath)

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// GetString returns the value of a configuration key
func (c *Config) GetString(key string) string {
	switch key {
	case domain.ConfigKeyJSONPath:
		return c.JSONPath
	case domain.ConfigKeySiteURL:
		return c.SiteURL
	case "logging.level":
		return c.Logging.Level
	case "logging.format":
		return c.Logging.Format
	default:
		return ""
	}
}
