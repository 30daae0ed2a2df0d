package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Vedic Astro Configuration

[chart]
# Default birth coordinates in decimal degrees, used when a command
# omits --lat/--lon
default_latitude = 0.0
default_longitude = 0.0
# Divisional charts computed by default
default_vargas = ["D9", "D10", "D12"]

[interpreter]
# LLM model for chart interpretation
model = "gpt-4o"
# Temperature for LLM responses (0.0 - 2.0)
temperature = 0.7
# Maximum tokens for LLM responses
max_tokens = 2048

[storage]
# Snapshot database path; empty means <config dir>/charts.db
database_path = ""

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"
`

const credentialsTemplate = `# Vedic Astro Credentials
# WARNING: Keep this file secure! Do not commit to version control.

[openai]
api_key = ""
`

func createTemplateConfig(configDir, name string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return fmt.Errorf("config file not found, created template at %s", path)
}

// CreateTemplateCredentials writes a credentials.toml skeleton so the user
// has a place to put the OpenAI key. Restricted permissions.
func CreateTemplateCredentials(configDir string) (string, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "credentials.toml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, []byte(credentialsTemplate), 0600); err != nil {
		return "", fmt.Errorf("writing credentials template: %w", err)
	}

	return path, nil
}
