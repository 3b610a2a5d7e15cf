// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/wslenv/internal/issue"
	"github.com/invowk/wslenv/pkg/wslenv"

	"github.com/spf13/cobra"
)

func newShowCommand(app *App) *cobra.Command {
	var style string

	showCmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Show one environment and its commands",
		Long: `Show one environment, including the commands that run it, activate it in a
new or running shell, and deactivate it.

Keys have the form wsl:<distribution>:<interpreter path>, as printed by
'wslenv list'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := wslenv.EnvironmentKey(args[0])
			if err := key.Validate(); err != nil {
				return err
			}

			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}

			env, ok := s.discovery.Resolve(cmd.Context(), key)
			if !ok {
				if rendered, renderErr := issue.Get(issue.EnvironmentNotFoundID).Render(glamourStyle(style)); renderErr == nil {
					fmt.Fprint(app.stderr, rendered)
				}
				return &ExitError{Code: 1, Err: fmt.Errorf("environment %s not found", key)}
			}

			out, err := renderMarkdown(environmentMarkdown(env), style)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(app.stdout, out)
			return err
		},
	}

	showCmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light, notty, ...")

	return showCmd
}

// glamourStyle maps the --style flag to a style name accepted by glamour.Render.
func glamourStyle(style string) string {
	if style == "" {
		return "auto"
	}
	return style
}
