// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Storage struct {
		Bucket          string `mapstructure:"bucket" yaml:"bucket"`
		Object          string `mapstructure:"object" yaml:"object"`
		DownloadDir     string `mapstructure:"download_dir" yaml:"download_dir"`
		CredentialsFile string `mapstructure:"credentials_file" yaml:"-"`
	} `mapstructure:"storage" yaml:"storage"`

	Report struct {
		// SkipZeroTotals drops zero-total categories from summaries.
		// Including them is the default; this makes the display choice
		// explicit instead of baked in.
		SkipZeroTotals bool `mapstructure:"skip_zero_totals" yaml:"skip_zero_totals"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bankdash")
	v.AddConfigPath(".bankdash")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("BANKDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// 5. Credentials file always comes from the standard env var when set
	if err := v.BindEnv("storage.credentials_file", "GOOGLE_APPLICATION_CREDENTIALS"); err != nil {
		Logger.Warnf("Failed to bind GOOGLE_APPLICATION_CREDENTIALS environment variable: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("rules.file", "categories.json")

	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.object", "")
	v.SetDefault("storage.download_dir", "data")

	v.SetDefault("report.skip_zero_totals", false)
}

// validateConfig checks configuration values that would otherwise fail
// in confusing ways deep inside a command.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(strings.ToLower(config.Log.Level)); err != nil {
		return fmt.Errorf("log.level %q is not a valid level", config.Log.Level)
	}

	format := strings.ToLower(config.Log.Format)
	if format != "text" && format != "json" {
		return fmt.Errorf("log.format must be 'text' or 'json', got %q", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", config.CSV.Delimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig applies the loaded configuration to the
// global logger and returns it.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}
