// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"log/slog"
	"testing"
)

func TestLogLevel_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   LogLevel
		wantErr bool
		slog    slog.Level
	}{
		{LogLevelDebug, false, slog.LevelDebug},
		{LogLevelInfo, false, slog.LevelInfo},
		{LogLevelWarn, false, slog.LevelWarn},
		{LogLevelError, false, slog.LevelError},
		{"", true, slog.LevelWarn},
		{"DEBUG", true, slog.LevelWarn},
		{"trace", true, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			err := tt.level.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LogLevel(%q).Validate() error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidLogLevel) {
					t.Errorf("error should wrap ErrInvalidLogLevel, got: %v", err)
				}
				var levelErr *InvalidLogLevelError
				if !errors.As(err, &levelErr) || levelErr.Value != tt.level {
					t.Errorf("error should be *InvalidLogLevelError for %q, got: %v", tt.level, err)
				}
			}
			if got := tt.level.SlogLevel(); got != tt.slog {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.slog)
			}
		})
	}
}

func TestOutputFormat_Validate(t *testing.T) {
	t.Parallel()

	for _, f := range []OutputFormat{OutputTable, OutputJSON, OutputYAML, OutputTOML} {
		if err := f.Validate(); err != nil {
			t.Errorf("OutputFormat(%q).Validate() = %v", f, err)
		}
	}
	for _, f := range []OutputFormat{"", "xml", "JSON"} {
		if err := f.Validate(); !errors.Is(err, ErrInvalidOutputFormat) {
			t.Errorf("OutputFormat(%q).Validate() = %v, want ErrInvalidOutputFormat", f, err)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := &Config{Launcher: "  ", LogLevel: "loud", Output: "xml"}
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
	}
	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", err)
	}
	if len(cfgErr.FieldErrors) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}
	if !errors.Is(err, ErrInvalidLogLevel) || !errors.Is(err, ErrInvalidOutputFormat) {
		t.Error("field errors should be reachable with errors.Is")
	}
	if err.Error() != "invalid config: 3 field errors" {
		t.Errorf("Error() = %q", err.Error())
	}

	single := &InvalidConfigError{FieldErrors: []error{errors.New("boom")}}
	if single.Error() != "invalid config: boom" {
		t.Errorf("Error() = %q", single.Error())
	}
}
