// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/invowk/wslenv/internal/config"
	"github.com/invowk/wslenv/internal/convert"
	"github.com/invowk/wslenv/internal/discovery"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type (
	// environmentView is the serialized form of an environment in
	// json/yaml/toml output.
	environmentView struct {
		ID          string                `json:"id" yaml:"id" toml:"id"`
		Manager     string                `json:"manager" yaml:"manager" toml:"manager"`
		Name        string                `json:"name" yaml:"name" toml:"name"`
		DisplayName string                `json:"displayName" yaml:"displayName" toml:"displayName"`
		Version     string                `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
		Interpreter string                `json:"interpreter" yaml:"interpreter" toml:"interpreter"`
		SysPrefix   string                `json:"sysPrefix" yaml:"sysPrefix" toml:"sysPrefix"`
		Execution   convert.ExecutionInfo `json:"execution" yaml:"execution" toml:"execution"`
	}

	// environmentList wraps the views so that every format has a top-level
	// table (TOML cannot encode a bare array).
	environmentList struct {
		Environments []environmentView `json:"environments" yaml:"environments" toml:"environments"`
	}
)

func newEnvironmentView(env *convert.Environment) environmentView {
	return environmentView{
		ID:          env.EnvID.ID,
		Manager:     env.EnvID.ManagerID,
		Name:        env.Name,
		DisplayName: env.DisplayName,
		Version:     env.Version,
		Interpreter: env.Description,
		SysPrefix:   env.SysPrefix,
		Execution:   env.Execution,
	}
}

// renderEnvironments writes envs to w in the requested format.
func renderEnvironments(w io.Writer, envs []*convert.Environment, format config.OutputFormat) error {
	if format == config.OutputTable {
		return renderTable(w, envs)
	}

	list := environmentList{Environments: make([]environmentView, 0, len(envs))}
	for _, env := range envs {
		list.Environments = append(list.Environments, newEnvironmentView(env))
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case config.OutputJSON:
		data, err = json.MarshalIndent(list, "", "  ")
		data = append(data, '\n')
	case config.OutputYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(list); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case config.OutputTOML:
		data, err = toml.Marshal(list)
	default:
		return format.Validate()
	}
	if err != nil {
		return fmt.Errorf("failed to encode environments as %s: %w", format, err)
	}

	_, err = w.Write(data)
	return err
}

func renderTable(w io.Writer, envs []*convert.Environment) error {
	if len(envs) == 0 {
		_, err := fmt.Fprintln(w, SubtitleStyle.Render("No WSL environments found."))
		return err
	}

	rows := make([][]string, 0, len(envs))
	for _, env := range envs {
		version := env.Version
		if version == "" {
			version = "-"
		}
		rows = append(rows, []string{env.DisplayName, version, env.Description, env.EnvID.ID})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtitleStyle).
		Headers("ENVIRONMENT", "VERSION", "INTERPRETER", "KEY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 1 && rows[row][col] == "-":
				return missingCellStyle
			default:
				return tableCellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// renderDiagnostics writes one line per diagnostic.
func renderDiagnostics(w io.Writer, diags []discovery.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s %s\n", severityLabel(d.Severity), d.Message)
	}
}

// environmentMarkdown describes env for `wslenv show`.
func environmentMarkdown(env *convert.Environment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", env.DisplayName)
	sb.WriteString(env.Tooltip)
	fmt.Fprintf(&sb, "- Key: `%s`\n", env.EnvID.ID)

	sb.WriteString("\n## Run\n\n")
	fmt.Fprintf(&sb, "    %s\n", env.Execution.Run)

	if len(env.Execution.Activation) > 0 {
		sb.WriteString("\n## Activate\n\n")
		for _, c := range env.Execution.Activation {
			fmt.Fprintf(&sb, "    %s\n", c)
		}
	}
	if len(env.Execution.ShellActivation) > 0 {
		sb.WriteString("\n## Activate in a running shell\n\n")
		for _, shell := range convert.Shells {
			for _, c := range env.Execution.ShellActivation[shell.String()] {
				fmt.Fprintf(&sb, "- %s: `%s`\n", shell, c)
			}
		}
	}
	if env.Execution.Deactivation != nil {
		sb.WriteString("\n## Deactivate\n\n")
		fmt.Fprintf(&sb, "    %s\n", env.Execution.Deactivation)
	}

	return sb.String()
}

// renderMarkdown renders md with glamour. "auto" picks a style from the
// terminal background.
func renderMarkdown(md, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(style)),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render(md)
}
