// SPDX-License-Identifier: MPL-2.0

// Package config loads the remus configuration: shell selection and UI
// preferences. Configuration is read once at startup from a TOML file in
// the platform config directory, with REMUS_* environment variables taking
// precedence over file values and defaults below both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "remus"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

type (
	// Config is the loaded remus configuration.
	Config struct {
		// Shell controls how recipe command lines are executed.
		Shell ShellConfig `mapstructure:"shell"`
		// UI controls output behavior.
		UI UIConfig `mapstructure:"ui"`
	}

	// ShellConfig selects and parameterizes the executor's shell.
	ShellConfig struct {
		// Mode is "native" (system shell) or "virtual" (built-in interpreter).
		Mode string `mapstructure:"mode"`
		// Path overrides the system shell binary (native mode only).
		Path string `mapstructure:"path"`
		// Args overrides the arguments passed before each command line
		// (native mode only).
		Args []string `mapstructure:"args"`
	}

	// UIConfig controls output behavior.
	UIConfig struct {
		// Verbose enables step tracing without passing --verbose.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{Mode: "native"},
	}
}

// Dir returns the remus configuration directory using platform
// conventions: %APPDATA% on Windows, ~/Library/Application Support on
// macOS, and $XDG_CONFIG_HOME (defaulting to ~/.config) elsewhere.
func Dir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration. A missing config file is not an error;
// defaults (and any REMUS_* environment overrides) apply. The path
// argument, when non-empty, names an explicit config file that must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("shell.mode", defaults.Shell.Mode)
	v.SetDefault("shell.path", defaults.Shell.Path)
	v.SetDefault("shell.args", defaults.Shell.Args)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
