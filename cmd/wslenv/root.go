// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/invowk/wslenv/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the wslenv command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wslenv",
		Short: "List Python environments discovered inside WSL distributions",
		Long: TitleStyle.Render("wslenv") + SubtitleStyle.Render(" - Python environments inside WSL") + `

wslenv reads the shared file in which the Python environments extension
records the interpreters it found inside your WSL distributions, and shows
them together with the commands that run and activate each one.

` + SubtitleStyle.Render("Examples:") + `
  wslenv list                          List all environments
  wslenv list --workspace C:\src\app   List environments of one workspace
  wslenv show wsl:Ubuntu:/usr/bin/python3
  wslenv doctor                        Explain an empty list`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.flags.configPath, "config", "", "config file (default is <config dir>/wslenv/config.cue)")
	flags.StringVar(&app.flags.storePath, "store", "", "environment store file (overrides store_path)")
	flags.StringVar(&app.flags.launcher, "launcher", "", "WSL launcher executable (overrides launcher)")
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newShowCommand(app))
	rootCmd.AddCommand(newPathCommand(app))
	rootCmd.AddCommand(newDoctorCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process with the resulting status.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
	if code := exitCode(err); code != 0 {
		os.Exit(code)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
