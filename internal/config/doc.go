// Package config provides configuration management for the sshconv CLI.
//
// This package handles loading and validating the tool's own configuration
// file. It is distinct from the SSH configurations the tool converts, which
// never pass through this package.
//
// # Configuration File
//
// The default configuration file location is ~/.config/sshconv/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	ssh_dir: /home/user/.ssh  # optional, defaults to ~/.ssh
//
// The SSHCONV_CONFIG_DIR environment variable adds an extra search
// directory, which is mainly useful in tests.
//
// # Loading Configuration
//
// Use [Load] with an empty path to search the default locations with
// graceful fallback to default values:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Passing an explicit path makes a missing file an error:
//
//	cfg, err := config.Load("/path/to/config.yaml")
//
// # Validation
//
// [Load] validates automatically. A configuration built by hand can be
// checked with [Validate]:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
//
// # Default Values
//
// The [Default] function returns a configuration with sensible defaults:
//
//	cfg := config.Default()
//	// cfg.Version = 1
//	// cfg.SSHDir = ~/.ssh
package config
