package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/datalint/datalint/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify datalint configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/datalint/config.yaml
Project-specific overrides can be placed in .datalint.yaml`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		switch len(args) {
		case 0:
			displayAllConfig(cfg)
		case 1:
			displayConfigKey(cfg, args[0])
		default:
			setConfigKey(cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	fmt.Printf("output.dir: %s\n", orUnset(cfg.Output.Dir))
	fmt.Printf("output.suffix: %s\n", cfg.Output.Suffix)
	fmt.Printf("session.path: %s\n", orUnset(cfg.Session.Path))
	fmt.Printf("session.retention_days: %d\n", cfg.Session.RetentionDays)
	fmt.Printf("no_color: %t\n", cfg.NoColor)
	fmt.Printf("verbose: %t\n", cfg.Verbose)
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cfg *config.Config, key, value string) {
	if err := setConfigValue(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Set %s = %s\n", key, value)
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "output.dir":
		return orUnset(cfg.Output.Dir), nil
	case "output.suffix":
		return cfg.Output.Suffix, nil
	case "session.path":
		return orUnset(cfg.Session.Path), nil
	case "session.retention_days":
		return strconv.Itoa(cfg.Session.RetentionDays), nil
	case "no_color":
		return strconv.FormatBool(cfg.NoColor), nil
	case "verbose":
		return strconv.FormatBool(cfg.Verbose), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "output.dir":
		cfg.Output.Dir = value
	case "output.suffix":
		cfg.Output.Suffix = value
	case "session.path":
		cfg.Session.Path = value
	case "session.retention_days":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for retention_days: %w", err)
		}
		cfg.Session.RetentionDays = n
	case "no_color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for no_color: %w", err)
		}
		cfg.NoColor = b
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for verbose: %w", err)
		}
		cfg.Verbose = b
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
