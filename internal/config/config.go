// Package config provides configuration management for the astrology application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Chart       ChartConfig       `mapstructure:"chart"`
	Interpreter InterpreterConfig `mapstructure:"interpreter"`
	Storage     StorageConfig     `mapstructure:"storage"`
	UI          UIConfig          `mapstructure:"ui"`
	Credentials Credentials       `mapstructure:"-"` // Loaded separately
}

// ChartConfig holds chart computation defaults.
type ChartConfig struct {
	DefaultLatitude  float64  `mapstructure:"default_latitude"`
	DefaultLongitude float64  `mapstructure:"default_longitude"`
	DefaultVargas    []string `mapstructure:"default_vargas"`
}

// InterpreterConfig holds AI interpretation configuration.
type InterpreterConfig struct {
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// StorageConfig holds snapshot storage configuration.
type StorageConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// Credentials holds API credentials.
type Credentials struct {
	OpenAI OpenAICredentials `mapstructure:"openai"`
}

// OpenAICredentials holds OpenAI API credentials.
type OpenAICredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/vedic-astro"
	}
	return filepath.Join(home, ".config", "vedic-astro")
}

// DefaultDatabasePath returns the default snapshot database location.
func DefaultDatabasePath() string {
	return filepath.Join(DefaultConfigDir(), "charts.db")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	// Load main config
	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	// Load credentials
	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = filepath.Join(configDir, "charts.db")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// Set defaults
	v.SetDefault("chart.default_vargas", []string{"D9", "D10", "D12"})
	v.SetDefault("interpreter.model", "gpt-4o")
	v.SetDefault("interpreter.temperature", 0.7)
	v.SetDefault("interpreter.max_tokens", 2048)
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
	v.SetDefault("ui.time_format", "15:04:05")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template
			return createTemplateConfig(configDir, name)
		}
		return err
	}

	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing credentials are not fatal: everything except the
			// interpreter works without a key.
			return nil
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Credentials.OpenAI.APIKey = v
	}
	if v := os.Getenv("ASTRO_DB_PATH"); v != "" {
		cfg.Storage.DatabasePath = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Chart.DefaultLatitude < -90 || c.Chart.DefaultLatitude > 90 {
		return fmt.Errorf("default_latitude must be between -90 and 90")
	}
	if c.Chart.DefaultLongitude < -180 || c.Chart.DefaultLongitude > 180 {
		return fmt.Errorf("default_longitude must be between -180 and 180")
	}
	if c.Interpreter.Temperature < 0 || c.Interpreter.Temperature > 2 {
		return fmt.Errorf("interpreter temperature must be between 0 and 2")
	}
	if c.Interpreter.MaxTokens < 0 {
		return fmt.Errorf("interpreter max_tokens must be non-negative")
	}
	return nil
}

// HasOpenAIKey returns true if an OpenAI API key is configured.
func (c *Config) HasOpenAIKey() bool {
	return c.Credentials.OpenAI.APIKey != ""
}
