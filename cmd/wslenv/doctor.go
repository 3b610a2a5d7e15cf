// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/invowk/wslenv/internal/discovery"
	"github.com/invowk/wslenv/internal/issue"

	"github.com/spf13/cobra"
)

// diagnosticIssues maps diagnostic codes to their help pages.
var diagnosticIssues = map[discovery.DiagnosticCode]issue.ID{
	discovery.CodeStoreMissing:         issue.StoreNotFoundID,
	discovery.CodeStoreUnreadable:      issue.StoreUnreadableID,
	discovery.CodeStoreVersionMismatch: issue.StoreVersionMismatchID,
	discovery.CodeRecordSkipped:        issue.RecordSkippedID,
}

func newDoctorCommand(app *App) *cobra.Command {
	var style string

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment store and explain problems",
		Long: `Check the environment store and explain why environments may be missing.

doctor reads the store strictly, reports whether it exists, which schema
version it has and how many records convert cleanly, and prints guidance for
every problem it finds. It exits with status 1 when the store is unreadable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := app.newSession(ctx)
			if err != nil {
				return err
			}

			result := s.discovery.Discover(ctx)
			doc := result.Document

			out := app.stdout
			fmt.Fprintln(out, TitleStyle.Render("Environment store"))
			fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("path"), s.store.Path())
			if problem, ok := result.StoreProblem(); ok {
				fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("status"), WarningStyle.Render("✗ "+storeStatus(problem)))
			} else {
				fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("status"), SuccessStyle.Render("✓ loaded (version "+doc.Version+")"))
			}
			fmt.Fprintf(out, "%s: %d recorded, %d usable\n", CmdStyle.Render("environments"), len(doc.Environments), len(result.Environments))
			fmt.Fprintf(out, "%s: %d\n", CmdStyle.Render("workspaces"), len(doc.WorkspaceMapping))

			if len(result.Diagnostics) > 0 {
				fmt.Fprintln(out)
				renderDiagnostics(out, result.Diagnostics)
			}

			seen := make(map[issue.ID]bool)
			for _, d := range result.Diagnostics {
				id, ok := diagnosticIssues[d.Code]
				if !ok || seen[id] {
					continue
				}
				seen[id] = true
				rendered, err := issue.Get(id).Render(glamourStyle(style))
				if err != nil {
					s.logger.Debug("failed to render issue", "issue", id, "error", err)
					continue
				}
				fmt.Fprint(out, rendered)
			}

			if result.HasErrors() {
				return &ExitError{Code: 1, Err: errors.New("environment store is unreadable")}
			}
			return nil
		},
	}

	doctorCmd.Flags().StringVar(&style, "style", "auto", "glamour style: auto, dark, light, notty, ...")

	return doctorCmd
}

// storeStatus is the one-line status for a store-level diagnostic.
func storeStatus(d discovery.Diagnostic) string {
	if d.Cause != nil {
		return d.Cause.Error()
	}
	return d.Message
}
