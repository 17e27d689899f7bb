package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(APIKeyEnv, "")
	t.Setenv("FREDCTL_FRED_API_KEY", "")
	t.Setenv("FREDCTL_OUTPUT_FORMAT", "")
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func validConfig() *Config {
	return &Config{
		FRED: FREDConfig{
			APIKey:  "abcdef0123456789abcdef0123456789",
			BaseURL: "https://api.stlouisfed.org/fred/",
			Timeout: 30 * time.Second,
		},
		Output:      OutputConfig{Format: "table"},
		Logging:     LoggingConfig{Level: "info", Format: "console"},
		Concurrency: 4,
	}
}

func TestLoad(t *testing.T) {
	t.Run("file values", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, `
fred:
  api_key: file-key
  timeout: 5s
output:
  format: json
filter:
  default_expression: 'popularity > 50'
  presets:
    monthly:
      description: Monthly series
      expression: 'frequency_short == "M"'
logging:
  level: debug
concurrency: 8
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.FRED.APIKey)
		assert.Equal(t, 5*time.Second, cfg.FRED.Timeout)
		assert.Equal(t, "https://api.stlouisfed.org/fred/", cfg.FRED.BaseURL)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, 8, cfg.Concurrency)
		require.Contains(t, cfg.Filter.Presets, "monthly")
		assert.Equal(t, `frequency_short == "M"`, cfg.Filter.Presets["monthly"].Expression)
		assert.NoError(t, Validate(cfg))
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(APIKeyEnv, "env-key")
		t.Setenv("FREDCTL_OUTPUT_FORMAT", "yaml")
		path := writeConfig(t, "fred:\n  api_key: file-key\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.FRED.APIKey)
		assert.Equal(t, "yaml", cfg.Output.Format)
	})

	t.Run("missing default file uses defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "table", cfg.Output.Format)
		assert.Equal(t, 30*time.Second, cfg.FRED.Timeout)
		assert.Equal(t, 4, cfg.Concurrency)
		assert.Empty(t, cfg.FRED.APIKey)
		assert.Error(t, Validate(cfg))
	})

	t.Run("explicit missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "missing api key", modify: func(c *Config) { c.FRED.APIKey = "" }, wantErr: "fred.api_key"},
		{name: "placeholder api key", modify: func(c *Config) { c.FRED.APIKey = "your-api-key-here" }, wantErr: "fred.api_key"},
		{name: "relative base url", modify: func(c *Config) { c.FRED.BaseURL = "fred/" }, wantErr: "fred.base_url"},
		{name: "zero timeout", modify: func(c *Config) { c.FRED.Timeout = 0 }, wantErr: "fred.timeout"},
		{name: "upper case log level", modify: func(c *Config) { c.Logging.Level = "DEBUG" }},
		{name: "bad log level", modify: func(c *Config) { c.Logging.Level = "trace" }, wantErr: "logging level"},
		{name: "bad log format", modify: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging format"},
		{name: "bad output format", modify: func(c *Config) { c.Output.Format = "csv" }, wantErr: "output.format"},
		{name: "zero concurrency", modify: func(c *Config) { c.Concurrency = 0 }, wantErr: "concurrency"},
		{
			name: "empty preset",
			modify: func(c *Config) {
				c.Filter.Presets = map[string]PresetFilter{"broken": {Description: "nothing"}}
			},
			wantErr: "broken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
