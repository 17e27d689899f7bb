package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	FRED        FREDConfig    `mapstructure:"fred"`
	Output      OutputConfig  `mapstructure:"output"`
	Filter      FilterConfig  `mapstructure:"filter"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Concurrency int           `mapstructure:"concurrency"`
	Update      UpdateConfig  `mapstructure:"update"`
}

// FREDConfig holds FRED API connection details
type FREDConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// OutputConfig controls how records are printed
type OutputConfig struct {
	Format      string `mapstructure:"format"`
	MaxCellSize int    `mapstructure:"max_cell_size"`
}

// FilterConfig contains filter definitions
type FilterConfig struct {
	DefaultExpression string                  `mapstructure:"default_expression"`
	Presets           map[string]PresetFilter `mapstructure:"presets"`
}

// PresetFilter is a named filter expression
type PresetFilter struct {
	Description string `mapstructure:"description"`
	Expression  string `mapstructure:"expression"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig configures self-update
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}
