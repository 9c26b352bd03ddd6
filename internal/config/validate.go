package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not a known config version.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Only version 1 exists today
	if cfg.Version != 1 {
		errs = append(errs, &VersionError{Version: cfg.Version})
	}

	// Validate the ssh directory path if set
	if cfg.SSHDir != "" {
		if err := validatePath(cfg.SSHDir); err != nil {
			errs = append(errs, &PathError{
				Field: "ssh_dir",
				Path:  cfg.SSHDir,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// joinErrors collapses validation errors into a single error value.
func joinErrors(errs []error) error {
	return errors.Join(errs...)
}

// VersionError reports an unsupported config version value.
type VersionError struct {
	Version int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported config version: %d", e.Version)
}

func (e *VersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
