// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"net/url"
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

type (
	// Command is one executable invocation.
	Command struct {
		Executable string   `json:"executable" yaml:"executable" toml:"executable"`
		Args       []string `json:"args" yaml:"args" toml:"args"`
	}

	// ExecutionInfo describes how the host runs and activates an interpreter.
	// For interpreters without an activation concept Activation,
	// ShellActivation and Deactivation are all nil, which callers must
	// distinguish from empty.
	ExecutionInfo struct {
		// Run launches the interpreter.
		Run Command `json:"run" yaml:"run" toml:"run"`
		// Activation activates the environment in a fresh shell.
		Activation []Command `json:"activation,omitempty" yaml:"activation,omitempty" toml:"activation,omitempty"`
		// ShellActivation maps a shell name to the commands that activate the
		// environment in an already running shell of that kind.
		ShellActivation map[string][]Command `json:"shellActivation,omitempty" yaml:"shellActivation,omitempty" toml:"shellActivation,omitempty"`
		// Deactivation leaves the environment.
		Deactivation *Command `json:"deactivation,omitempty" yaml:"deactivation,omitempty" toml:"deactivation,omitempty"`
	}

	// EnvironmentInfo is everything the converter derives from a record. The
	// host turns it into an Environment through an ItemFactory.
	EnvironmentInfo struct {
		Name             string
		DisplayName      string
		ShortDisplayName string
		DisplayPath      string
		Version          string
		Description      string
		// Tooltip is markdown.
		Tooltip string
		// EnvironmentPath is the resource locator built from the record key.
		EnvironmentPath *url.URL
		Execution       ExecutionInfo
		SysPrefix       string
	}

	// EnvironmentID identifies an environment within its manager.
	EnvironmentID struct {
		ID        string
		ManagerID string
	}

	// Environment is the host-facing environment item. A fresh value is built
	// per conversion and belongs to the caller.
	Environment struct {
		EnvironmentInfo
		EnvID EnvironmentID
	}

	// Manager is the owner handle passed through conversion.
	Manager struct {
		Name                      string
		DisplayName               string
		PreferredPackageManagerID string
		Description               string
	}
)

// DefaultManager describes the WSL environment manager.
var DefaultManager = Manager{
	Name:                      "wsl",
	DisplayName:               "WSL",
	PreferredPackageManagerID: "ms-python.python:pip",
	Description:               "Python environments inside WSL distributions",
}

// String renders the command as a POSIX shell command line.
func (c Command) String() string {
	parts := make([]string, 0, 1+len(c.Args))
	parts = append(parts, quoteArg(c.Executable))
	for _, arg := range c.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

// quoteArg quotes s for bash. Strings bash cannot represent (NUL bytes) fall
// back to Go quoting, which is only used for display.
func quoteArg(s string) string {
	quoted, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return strconv.Quote(s)
	}
	return quoted
}
