// Package config provides configuration management for sshconv using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/sshconv/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "sshconv"

// Config represents the top-level configuration structure.
type Config struct {
	Version int    `mapstructure:"version" yaml:"version"`
	SSHDir  string `mapstructure:"ssh_dir" yaml:"ssh_dir"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Version: 1,
		SSHDir:  paths.DefaultSSHDir(),
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Calling it again resets any previously loaded state.
func Init() {
	viper.Reset()

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	if dir := os.Getenv("SSHCONV_CONFIG_DIR"); dir != "" {
		viper.AddConfigPath(dir)
	}
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support
	viper.SetEnvPrefix("SSHCONV")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("ssh_dir", paths.DefaultSSHDir())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		switch {
		case isNotFound(err):
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		default:
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("validating config: %w", joinErrors(errs))
	}

	return &cfg, nil
}

// isNotFound reports whether err means no config file exists. Viper returns
// ConfigFileNotFoundError only in search-path mode; explicit paths surface
// plain fs errors.
func isNotFound(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return os.IsNotExist(err)
}
