// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const (
	// LogLevelDebug logs store and conversion details.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs notable events such as ignored store versions.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs skipped records and unreadable stores.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs only failures.
	LogLevelError LogLevel = "error"

	// OutputTable renders a styled table.
	OutputTable OutputFormat = "table"
	// OutputJSON renders indented JSON.
	OutputJSON OutputFormat = "json"
	// OutputYAML renders YAML.
	OutputYAML OutputFormat = "yaml"
	// OutputTOML renders TOML.
	OutputTOML OutputFormat = "toml"

	// DefaultLauncher matches convert.DefaultLauncher. It is repeated here to
	// keep config free of domain imports.
	DefaultLauncher = "wsl.exe"
)

var (
	// ErrInvalidLogLevel is the sentinel error wrapped by InvalidLogLevelError.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidOutputFormat is the sentinel error wrapped by InvalidOutputFormatError.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel is the minimum level of log output.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// OutputFormat selects how environments are printed.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	// It wraps ErrInvalidOutputFormat for errors.Is() compatibility.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// InvalidConfigError is returned when one or more Config fields are invalid.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// StorePath overrides the shared environment file location.
		StorePath string `json:"store_path" mapstructure:"store_path"`
		// Launcher is the WSL launcher executable.
		Launcher string `json:"launcher" mapstructure:"launcher"`
		// LogLevel is the minimum level printed by the CLI.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
		// Output is the default list output format.
		Output OutputFormat `json:"output" mapstructure:"output"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		StorePath: "",
		Launcher:  DefaultLauncher,
		LogLevel:  LogLevelWarn,
		Output:    OutputTable,
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// Validate returns nil if the LogLevel is one of the defined levels,
// or an error wrapping ErrInvalidLogLevel if it is not.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return &InvalidLogLevelError{Value: l}
	}
}

// SlogLevel maps the level onto slog. Unknown levels map to warn.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// Validate returns nil if the OutputFormat is one of the defined formats,
// or an error wrapping ErrInvalidOutputFormat if it is not.
func (f OutputFormat) Validate() error {
	switch f {
	case OutputTable, OutputJSON, OutputYAML, OutputTOML:
		return nil
	default:
		return &InvalidOutputFormatError{Value: f}
	}
}

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: table, json, yaml, toml)", e.Value)
}

// Unwrap returns ErrInvalidOutputFormat for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// Validate checks every field and returns an *InvalidConfigError listing all
// failures.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Launcher) == "" {
		errs = append(errs, errors.New("launcher must not be empty"))
	}
	if err := c.LogLevel.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Output.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field errors", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig followed by the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
