// SPDX-License-Identifier: MPL-2.0

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionMismatch is the sentinel error wrapped by VersionMismatchError.
	ErrVersionMismatch = errors.New("unsupported store version")
	// ErrNoDataDir is returned when no application data directory can be determined.
	ErrNoDataDir = errors.New("no application data directory")
)

type (
	// VersionMismatchError is returned by Load when the file carries a version
	// other than wslenv.SchemaVersion. The file is not migrated; its contents
	// are ignored until the producer writes a supported version.
	VersionMismatchError struct {
		Path     string
		Found    string
		Expected string
	}

	// LoadError is returned by Load when the file cannot be read or decoded.
	// Op is "read" or "decode".
	LoadError struct {
		Path string
		Op   string
		Err  error
	}
)

// Error implements the error interface for VersionMismatchError.
func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("store %s has version %q, expected %q", e.Path, e.Found, e.Expected)
}

// Unwrap returns ErrVersionMismatch for errors.Is() compatibility.
func (e *VersionMismatchError) Unwrap() error { return ErrVersionMismatch }

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to %s store %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error { return e.Err }
