// Package config provides configuration loading and validation for the resume site.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config represents the site configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from Default and the environment.
type Config struct {
	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"` // HTTP listen port

	// Content
	ProfilePath string `json:"profile,omitempty"` // Profile JSON overriding the compiled-in profile

	// PDF
	ChromePath      string `json:"chrome_path,omitempty"`       // Chrome/Chromium binary, empty uses the chromedp lookup
	ChromeTimeout   string `json:"chrome_timeout,omitempty"`    // Per-document browser timeout, e.g. "30s"
	StrictPageCount bool   `json:"strict_page_count,omitempty"` // Fail when the PDF is not exactly one page

	// CLI
	OutputDir string `json:"output_dir,omitempty"` // Default directory for export

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Port:          8080,
		ChromeTimeout: "30s",
		OutputDir:     "dist",
	}
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

// Resolve builds the effective configuration: the optional file at path,
// then the environment on top, then Default for anything still unset.
func Resolve(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	withEnv := cfg.ApplyEnv()
	result := withEnv.MergeWithDefaults(Default())
	if err := result.Validate(); err != nil {
		return Config{}, err
	}
	return result, nil
}

// ApplyEnv returns a copy of c with environment overrides applied.
// PORT, RESUME_PROFILE, CHROME_PATH, CHROME_TIMEOUT, STRICT_PAGE_COUNT and VERBOSE are recognised.
func (c *Config) ApplyEnv() Config {
	result := *c
	result.Port = EnvInt("PORT", result.Port)
	result.ProfilePath = EnvString("RESUME_PROFILE", result.ProfilePath)
	result.ChromePath = EnvString("CHROME_PATH", result.ChromePath)
	result.ChromeTimeout = EnvString("CHROME_TIMEOUT", result.ChromeTimeout)
	result.StrictPageCount = EnvBool("STRICT_PAGE_COUNT", result.StrictPageCount)
	result.Verbose = EnvBool("VERBOSE", result.Verbose)
	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.ChromeTimeout != "" {
		d, err := time.ParseDuration(c.ChromeTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'chrome_timeout' %q: %w", c.ChromeTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'chrome_timeout' must be positive")
		}
	}

	// Validate file paths exist (if specified)
	if c.ProfilePath != "" {
		if _, err := os.Stat(c.ProfilePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.ProfilePath)
		}
	}

	return nil
}

// Timeout returns ChromeTimeout as a duration, zero when unset or invalid
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.ChromeTimeout)
	if err != nil {
		return 0
	}
	return d
}

// Addr returns the listen address for Port
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ProfilePath == "" {
		result.ProfilePath = defaults.ProfilePath
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.ChromeTimeout == "" {
		result.ChromeTimeout = defaults.ChromeTimeout
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (env and CLI flags should always win for bools)

	return result
}
