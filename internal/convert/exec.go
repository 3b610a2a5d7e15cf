// SPDX-License-Identifier: MPL-2.0

package convert

import "github.com/invowk/wslenv/pkg/wslenv"

// DefaultLauncher is the WSL launcher executable on the Windows host.
const DefaultLauncher = "wsl.exe"

// buildExecutionInfo derives the run and activation commands for record.
func buildExecutionInfo(record wslenv.EnvironmentRecord, launcher string) ExecutionInfo {
	info := ExecutionInfo{
		Run: Command{
			Executable: launcher,
			Args:       []string{"-d", record.Distribution, "--", record.PythonPath},
		},
	}

	if !record.Kind.HasActivation() {
		return info
	}

	script := "source " + quoteArg(posixActivateScript(record.EnvironmentPath))
	info.Activation = []Command{{
		Executable: launcher,
		Args:       []string{"-d", record.Distribution, "--", "bash", "-c", script},
	}}

	info.ShellActivation = make(map[string][]Command, len(Shells))
	for _, shell := range Shells {
		info.ShellActivation[shell.String()] = []Command{shell.activation(record.EnvironmentPath)}
	}

	info.Deactivation = &Command{Executable: "deactivate", Args: []string{}}
	return info
}
