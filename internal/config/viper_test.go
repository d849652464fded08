package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with an empty HOME and no
// SPENDWISE_* variables, so no stray config file or variable leaks in.
func isolate(t *testing.T) string {
	t.Helper()

	for _, key := range []string{
		"SPENDWISE_LOG_LEVEL",
		"SPENDWISE_LOG_FORMAT",
		"SPENDWISE_CSV_DELIMITER",
		"SPENDWISE_WASTE_VOCABULARY_FILE",
		"SPENDWISE_WASTE_TERMS",
		"SPENDWISE_REPORT_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, ',', config.Delimiter())
	assert.Equal(t, "", config.Waste.VocabularyFile)
	assert.Empty(t, config.Waste.Terms)
	assert.Equal(t, "text", config.Report.Format)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	t.Setenv("SPENDWISE_LOG_LEVEL", "debug")
	t.Setenv("SPENDWISE_LOG_FORMAT", "json")
	t.Setenv("SPENDWISE_CSV_DELIMITER", ";")
	t.Setenv("SPENDWISE_WASTE_VOCABULARY_FILE", "/tmp/waste.yaml")
	t.Setenv("SPENDWISE_WASTE_TERMS", "netflix,spotify")
	t.Setenv("SPENDWISE_REPORT_FORMAT", "json")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ';', config.Delimiter())
	assert.Equal(t, "/tmp/waste.yaml", config.Waste.VocabularyFile)
	assert.Equal(t, []string{"netflix", "spotify"}, config.Waste.Terms)
	assert.Equal(t, "json", config.Report.Format)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := isolate(t)

	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
waste:
  vocabulary_file: "vocab.yaml"
  terms: ["netflix", "steam"]
report:
  format: "yaml"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, '|', config.Delimiter())
	assert.Equal(t, "vocab.yaml", config.Waste.VocabularyFile)
	assert.Equal(t, []string{"netflix", "steam"}, config.Waste.Terms)
	assert.Equal(t, "yaml", config.Report.Format)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	dir := isolate(t)

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))
	t.Setenv("SPENDWISE_LOG_LEVEL", "error")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, "text", config.Log.Format)
}

func TestInitializeConfig_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("SPENDWISE_REPORT_FORMAT", "html")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report format")
}

func TestInitializeConfig_MalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0600))

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "invalid" },
			expectError:  "invalid log format",
		},
		{
			name:         "multi character delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "abc" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "empty delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "invalid report format",
			modifyConfig: func(c *Config) { c.Report.Format = "pdf" },
			expectError:  "invalid report format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}

	assert.NoError(t, validateConfig(Default()))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name          string
		log           LogConfig
		expectedLevel logrus.Level
		json          bool
	}{
		{name: "text format info level", log: LogConfig{Level: "info", Format: "text"}, expectedLevel: logrus.InfoLevel},
		{name: "json format debug level", log: LogConfig{Level: "debug", Format: "json"}, expectedLevel: logrus.DebugLevel, json: true},
		{name: "bad level falls back to info", log: LogConfig{Level: "loud", Format: "text"}, expectedLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := ConfigureLoggingFromConfig(&Config{Log: tt.log})
			require.NotNil(t, logger)
			assert.Equal(t, tt.expectedLevel, logger.GetLevel())

			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.json, isJSON)
		})
	}
}

func TestIsReportFormat(t *testing.T) {
	for _, format := range ReportFormats {
		assert.True(t, IsReportFormat(format))
	}
	assert.False(t, IsReportFormat("TEXT"))
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.CSV.Delimiter = ";;"
	assert.Error(t, cfg.Validate())
}
