// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults applied by MergeWithDefaults and FromEnv.
const (
	DefaultPort          = 8080
	DefaultPrintSettle   = 1500 * time.Millisecond
	DefaultExportTimeout = 60 * time.Second
)

// Duration is a time.Duration that reads and writes "1.5s" style strings in JSON.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts a duration string or a number of milliseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("duration must be a string or milliseconds: %w", err)
	}
	*d = Duration(time.Duration(ms) * time.Millisecond)
	return nil
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Generator
	APIKey string `json:"api_key,omitempty"` // Gemini API key
	Model  string `json:"model,omitempty"`   // Overrides the standard tier model

	// Export
	ChromePath    string   `json:"chrome_path,omitempty"`    // Chrome/Chromium executable, empty for auto-detect
	PrintSettle   Duration `json:"print_settle,omitempty"`   // Delay before printing so styles apply
	ExportTimeout Duration `json:"export_timeout,omitempty"` // Upper bound on one PDF export

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from the process environment. The credential is
// read from API_KEY, then GEMINI_API_KEY.
func FromEnv() Config {
	cfg := Config{
		APIKey:     APIKeyFromEnv(),
		Model:      os.Getenv("GEMINI_MODEL"),
		ChromePath: os.Getenv("CHROME_PATH"),
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("PRINT_SETTLE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PrintSettle = Duration(d)
		}
	}
	if v := os.Getenv("EXPORT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ExportTimeout = Duration(d)
		}
	}
	return cfg
}

// APIKeyFromEnv returns API_KEY, falling back to GEMINI_API_KEY.
func APIKeyFromEnv() string {
	if key := os.Getenv("API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GEMINI_API_KEY")
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging. A missing API key is not an error:
// generation reports it when used.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.PrintSettle < 0 {
		return fmt.Errorf("config error: 'print_settle' must be non-negative")
	}
	if c.ExportTimeout < 0 {
		return fmt.Errorf("config error: 'export_timeout' must be non-negative")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome executable not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// then from the package defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.PrintSettle == 0 {
		result.PrintSettle = defaults.PrintSettle
	}
	if result.PrintSettle == 0 {
		result.PrintSettle = Duration(DefaultPrintSettle)
	}
	if result.ExportTimeout == 0 {
		result.ExportTimeout = defaults.ExportTimeout
	}
	if result.ExportTimeout == 0 {
		result.ExportTimeout = Duration(DefaultExportTimeout)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
