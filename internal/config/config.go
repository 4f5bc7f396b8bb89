// Package config handles configuration loading and management for datalint.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for datalint.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Session SessionConfig `mapstructure:"session"`
	NoColor bool          `mapstructure:"no_color"`
	Verbose bool          `mapstructure:"verbose"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	// Dir is the directory reports are written to. Empty means next to
	// the input file.
	Dir string `mapstructure:"dir"`
	// Suffix is appended to the input file stem to form the report name.
	Suffix string `mapstructure:"suffix"`
}

// SessionConfig holds run history settings.
type SessionConfig struct {
	// Path overrides the run history database location.
	Path string `mapstructure:"path"`
	// RetentionDays is how long runs are kept. Zero disables purging.
	RetentionDays int `mapstructure:"retention_days"`
}

// OutputPath returns the report path for a source file: the input stem
// plus the configured suffix, in the output directory or next to the
// input when no directory is configured.
func (c *Config) OutputPath(source string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := stem + c.Output.Suffix + ".xlsx"

	if c.Output.Dir != "" {
		return filepath.Join(c.Output.Dir, name)
	}
	return filepath.Join(filepath.Dir(source), name)
}

// RetentionDuration returns the run history retention as a duration.
func (c *Config) RetentionDuration() time.Duration {
	return time.Duration(c.Session.RetentionDays) * 24 * time.Hour
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (DATALINT_*)
// 2. Project config (.datalint.yaml in current directory or parent)
// 3. User config (~/.config/datalint/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			// Project config takes precedence over the user config.
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("output.dir", "DATALINT_OUTPUT_DIR")
	v.BindEnv("output.suffix", "DATALINT_OUTPUT_SUFFIX")
	v.BindEnv("session.path", "DATALINT_SESSION_PATH")
	v.BindEnv("no_color", "DATALINT_NO_COLOR")
	v.BindEnv("verbose", "DATALINT_VERBOSE")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Expand ${VAR} references in path settings.
	cfg.Output.Dir = expandEnv(cfg.Output.Dir)
	cfg.Session.Path = expandEnv(cfg.Session.Path)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Output.Dir = expandEnv(cfg.Output.Dir)
	cfg.Session.Path = expandEnv(cfg.Session.Path)

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("output.dir", cfg.Output.Dir)
	v.Set("output.suffix", cfg.Output.Suffix)
	v.Set("session.path", cfg.Session.Path)
	v.Set("session.retention_days", cfg.Session.RetentionDays)
	v.Set("no_color", cfg.NoColor)
	v.Set("verbose", cfg.Verbose)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "")
	v.SetDefault("output.suffix", "_validated")

	v.SetDefault("session.path", "")
	v.SetDefault("session.retention_days", 30)

	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)
}

// getUserConfigDir returns the XDG config directory for datalint.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "datalint")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "datalint")
	}
	return filepath.Join(home, ".config", "datalint")
}

// findProjectConfig searches for .datalint.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".datalint.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandEnv expands ${VAR} references in a string.
func expandEnv(s string) string {
	return os.ExpandEnv(s)
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:    "",
			Suffix: "_validated",
		},
		Session: SessionConfig{
			Path:          "",
			RetentionDays: 30,
		},
		NoColor: false,
		Verbose: false,
	}
}
