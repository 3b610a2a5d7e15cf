// SPDX-License-Identifier: MPL-2.0

package convert

import "path"

const (
	// ShellBash is GNU bash.
	ShellBash Shell = iota
	// ShellZsh is zsh.
	ShellZsh
	// ShellFish is the fish shell, which cannot source POSIX scripts.
	ShellFish
	// ShellPwsh is PowerShell.
	ShellPwsh
	// ShellUnknown is the fallback for any shell the host cannot identify.
	ShellUnknown
)

// Shell is the closed set of shells that get a per-shell activation entry.
type Shell int

// Shells lists every Shell in presentation order.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish, ShellPwsh, ShellUnknown}

// String returns the key the host uses for the shell.
func (s Shell) String() string {
	switch s {
	case ShellBash:
		return "bash"
	case ShellZsh:
		return "zsh"
	case ShellFish:
		return "fish"
	case ShellPwsh:
		return "pwsh"
	default:
		return "unknown"
	}
}

// activation returns the command that activates the virtual environment at
// envPath from within a running shell of kind s. envPath is a POSIX path
// inside the distribution.
func (s Shell) activation(envPath string) Command {
	switch s {
	case ShellFish:
		return Command{Executable: "source", Args: []string{path.Join(envPath, "bin", "activate.fish")}}
	case ShellPwsh:
		return Command{Executable: ".", Args: []string{path.Join(envPath, "bin", "Activate.ps1")}}
	default:
		return Command{Executable: "source", Args: []string{posixActivateScript(envPath)}}
	}
}

func posixActivateScript(envPath string) string {
	return path.Join(envPath, "bin", "activate")
}
