// SPDX-License-Identifier: MPL-2.0

package wslenv

import (
	"errors"
	"fmt"
)

const (
	// KindVenv is a virtual environment created inside the distribution.
	KindVenv EnvironmentKind = "venv"
	// KindSystem is an interpreter installed by the distribution itself.
	KindSystem EnvironmentKind = "system"
	// KindOther covers interpreters the producer could not classify.
	KindOther EnvironmentKind = "other"
)

// ErrInvalidEnvironmentKind is the sentinel error wrapped by InvalidEnvironmentKindError.
var ErrInvalidEnvironmentKind = errors.New("invalid environment kind")

type (
	// EnvironmentKind classifies a recorded interpreter.
	EnvironmentKind string

	// InvalidEnvironmentKindError is returned when an EnvironmentKind value is not recognized.
	// It wraps ErrInvalidEnvironmentKind for errors.Is() compatibility.
	InvalidEnvironmentKindError struct {
		Value EnvironmentKind
	}
)

// String returns the string representation of the EnvironmentKind.
func (k EnvironmentKind) String() string { return string(k) }

// Validate returns an error if the kind is not one of venv, system or other.
func (k EnvironmentKind) Validate() error {
	switch k {
	case KindVenv, KindSystem, KindOther:
		return nil
	default:
		return &InvalidEnvironmentKindError{Value: k}
	}
}

// HasActivation reports whether environments of this kind are activated
// before use. Only virtual environments are.
func (k EnvironmentKind) HasActivation() bool { return k == KindVenv }

// Error implements the error interface for InvalidEnvironmentKindError.
func (e *InvalidEnvironmentKindError) Error() string {
	return fmt.Sprintf("invalid environment kind %q (valid: venv, system, other)", e.Value)
}

// Unwrap returns ErrInvalidEnvironmentKind for errors.Is() compatibility.
func (e *InvalidEnvironmentKindError) Unwrap() error { return ErrInvalidEnvironmentKind }
