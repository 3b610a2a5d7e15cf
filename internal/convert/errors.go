// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"errors"
	"fmt"

	"github.com/invowk/wslenv/pkg/wslenv"
)

var (
	// ErrInvalidRecord is the sentinel error wrapped by InvalidRecordError.
	ErrInvalidRecord = errors.New("invalid environment record")
	// ErrInvalidLocator is the sentinel error wrapped by InvalidLocatorError.
	ErrInvalidLocator = errors.New("invalid environment locator")
)

type (
	// InvalidRecordError is returned when a record does not satisfy the
	// record schema.
	InvalidRecordError struct {
		Key wslenv.EnvironmentKey
		Err error
	}

	// InvalidLocatorError is returned when the record key cannot serve as a
	// resource locator.
	InvalidLocatorError struct {
		Key wslenv.EnvironmentKey
		Err error
	}
)

// Error implements the error interface for InvalidRecordError.
func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid environment record %q: %v", e.Key, e.Err)
}

// Unwrap returns both ErrInvalidRecord and the validation cause.
func (e *InvalidRecordError) Unwrap() []error { return []error{ErrInvalidRecord, e.Err} }

// Error implements the error interface for InvalidLocatorError.
func (e *InvalidLocatorError) Error() string {
	return fmt.Sprintf("invalid environment locator %q: %v", e.Key, e.Err)
}

// Unwrap returns both ErrInvalidLocator and the parse cause.
func (e *InvalidLocatorError) Unwrap() []error { return []error{ErrInvalidLocator, e.Err} }
