package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// APIKeyEnv is the conventional environment variable for the FRED API key.
const APIKeyEnv = "FRED_API_KEY"

// Load loads the configuration from file and environment. A missing config
// file is not an error; the API key may come from FRED_API_KEY or a flag,
// so Load does not require it. Call Validate once overrides are applied.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix("FREDCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("fred.api_key", "FREDCTL_FRED_API_KEY", APIKeyEnv); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".fredctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/fredctl/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// FRED defaults
	v.SetDefault("fred.api_key", "")
	v.SetDefault("fred.base_url", "https://api.stlouisfed.org/fred/")
	v.SetDefault("fred.timeout", "30s")
	v.SetDefault("fred.user_agent", "fredctl")

	// Output defaults
	v.SetDefault("output.format", "table")
	v.SetDefault("output.max_cell_size", 60)

	v.SetDefault("filter.default_expression", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("concurrency", 4)
	v.SetDefault("update.repository", "s0up4200/fredctl")
}

// Validate checks if the configuration is valid
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.FRED.APIKey) == "" || cfg.FRED.APIKey == "your-api-key-here" {
		return fmt.Errorf("fred.api_key must be set (or export %s)", APIKeyEnv)
	}

	u, err := url.Parse(cfg.FRED.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid fred.base_url: %q", cfg.FRED.BaseURL)
	}

	if cfg.FRED.Timeout <= 0 {
		return fmt.Errorf("fred.timeout must be positive, got %s", cfg.FRED.Timeout)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
		"yaml":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output.format: %s (must be table, json or yaml)", cfg.Output.Format)
	}

	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency)
	}

	for name, p := range cfg.Filter.Presets {
		if strings.TrimSpace(p.Expression) == "" {
			return fmt.Errorf("filter preset %q has no expression", name)
		}
	}

	return nil
}
