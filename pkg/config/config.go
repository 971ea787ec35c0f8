// Package config loads agentskills settings from flags, AGENTSKILLS_*
// environment variables and an optional config.yaml using viper.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/jingkaihe/agentskills/pkg/logger"
)

const (
	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "AGENTSKILLS"

	// FormatJSON renders properties as JSON
	FormatJSON = "json"
	// FormatYAML renders properties as YAML
	FormatYAML = "yaml"
)

// Config holds the settings shared by every command
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Format    string `mapstructure:"format"`
	Quiet     bool   `mapstructure:"quiet"`
}

// Init prepares the global viper instance. When configFile is empty the
// config is looked up as $HOME/.agentskills/config.yaml; a missing or
// unreadable file there is not an error and the defaults apply. An explicit
// configFile must exist and parse.
func Init(configFile string) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "fmt")
	viper.SetDefault("format", FormatJSON)
	viper.SetDefault("quiet", false)

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.agentskills")
	}

	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}
	if configFile != "" {
		return errors.Wrap(err, "failed to read config file")
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		logger.L.WithError(err).Warn("ignoring unreadable config file, using defaults")
	}
	return nil
}

// Load decodes the current viper settings and validates them
func Load() (Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate rejects unknown output and log formats
func (c Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return errors.Errorf("unsupported output format %q, expected json or yaml", c.Format)
	}

	switch c.LogFormat {
	case "fmt", "json":
	default:
		return errors.Errorf("unsupported log format %q, expected fmt or json", c.LogFormat)
	}
	return nil
}
