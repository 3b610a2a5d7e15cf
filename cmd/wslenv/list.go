// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/wslenv/internal/config"
	"github.com/invowk/wslenv/internal/discovery"

	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	var (
		workspace string
		output    string
	)

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List WSL Python environments",
		Long: `List the Python environments recorded in the shared store.

Without --workspace every environment is listed, ordered by key. With
--workspace only the environments mapped to that workspace are listed, in
the order the producer recorded them. Records that cannot be converted are
skipped and reported on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.newSession(cmd.Context())
			if err != nil {
				return err
			}

			format := s.cfg.Output
			if output != "" {
				format = config.OutputFormat(output)
			}
			if err := format.Validate(); err != nil {
				return err
			}

			var result discovery.Result
			if workspace != "" {
				result = s.discovery.DiscoverWorkspace(cmd.Context(), workspace)
			} else {
				result = s.discovery.Discover(cmd.Context())
			}

			renderDiagnostics(app.stderr, result.Diagnostics)
			return renderEnvironments(app.stdout, result.Environments, format)
		},
	}

	listCmd.Flags().StringVarP(&workspace, "workspace", "w", "", "only list environments of this workspace path")
	listCmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json, yaml or toml (default from config)")

	return listCmd
}
