// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g.
// SPENDWISE_LOG_LEVEL.
const EnvPrefix = "SPENDWISE"

// Report formats accepted by report.format.
var ReportFormats = []string{"text", "json", "yaml", "csv"}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	CSV    CSVConfig    `mapstructure:"csv" yaml:"csv"`
	Waste  WasteConfig  `mapstructure:"waste" yaml:"waste"`
	Report ReportConfig `mapstructure:"report" yaml:"report"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig applies to ledger input and CSV output.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// WasteConfig locates the vocabulary file and adds terms on top of it.
type WasteConfig struct {
	VocabularyFile string   `mapstructure:"vocabulary_file" yaml:"vocabulary_file"`
	Terms          []string `mapstructure:"terms" yaml:"terms"`
}

// ReportConfig holds report rendering defaults.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		CSV:    CSVConfig{Delimiter: ","},
		Waste:  WasteConfig{VocabularyFile: "", Terms: []string{}},
		Report: ReportConfig{Format: "text"},
	}
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml from $HOME/.spendwise, .spendwise or the working
// directory, then SPENDWISE_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.spendwise")
	v.AddConfigPath(".spendwise")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
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
	defaults := Default()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetDefault("csv.delimiter", defaults.CSV.Delimiter)

	v.SetDefault("waste.vocabulary_file", defaults.Waste.VocabularyFile)
	v.SetDefault("waste.terms", defaults.Waste.Terms)

	v.SetDefault("report.format", defaults.Report.Format)
}

// Validate checks config, typically after command line overrides were
// applied on top of InitializeConfig.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}

	if !IsReportFormat(config.Report.Format) {
		return fmt.Errorf("invalid report format: %s (must be one of %s)",
			config.Report.Format, strings.Join(ReportFormats, ", "))
	}

	return nil
}

// IsReportFormat reports whether format names a supported report format.
func IsReportFormat(format string) bool {
	for _, f := range ReportFormats {
		if format == f {
			return true
		}
	}
	return false
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// ConfigureLoggingFromConfig builds a logrus logger for config. Log output
// goes to stderr so reports on stdout stay clean.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
