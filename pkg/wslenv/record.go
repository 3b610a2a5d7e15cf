// SPDX-License-Identifier: MPL-2.0

package wslenv

// EnvironmentRecord is the producer's fact about one discovered interpreter.
// Paths are in the distribution's own (POSIX) syntax. Records are read-only
// from this module's point of view.
type EnvironmentRecord struct {
	// Distribution is the WSL distribution name, e.g. "Ubuntu-22.04".
	Distribution string `json:"distribution"`
	// PythonPath is the interpreter executable inside the distribution.
	PythonPath string `json:"pythonPath"`
	// EnvironmentPath is the base directory of the environment (the venv root
	// for virtual environments).
	EnvironmentPath string `json:"environmentPath"`
	// WorkspacePath is the host workspace the environment was found from, if any.
	WorkspacePath string `json:"workspacePath,omitempty"`
	// Name is the human-readable environment name.
	Name string `json:"name"`
	// Kind classifies the interpreter.
	Kind EnvironmentKind `json:"kind"`
	// CreatedAt is when the producer first recorded the interpreter.
	CreatedAt Timestamp `json:"createdAt"`
	// LastUsedAt is when the interpreter was last selected.
	LastUsedAt Timestamp `json:"lastUsedAt"`
	// Version is the interpreter version reported by the producer, if known.
	Version string `json:"version,omitempty"`
	// SysPrefix is the interpreter's sys.prefix.
	SysPrefix string `json:"sysPrefix"`
}

// Key returns the record's identity key, derived from its distribution and
// interpreter path.
func (r EnvironmentRecord) Key() EnvironmentKey {
	return NewEnvironmentKey(r.Distribution, r.PythonPath)
}
