// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invowk/wslenv/internal/config"
	"github.com/invowk/wslenv/internal/issue"
	"github.com/invowk/wslenv/internal/store"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `wslenv config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage wslenv configuration",
		Long: `Manage wslenv configuration.

Configuration is stored in:
  - Linux: $XDG_CONFIG_HOME/wslenv/config.cue (~/.config/wslenv/config.cue)
  - macOS: ~/Library/Application Support/wslenv/config.cue
  - Windows: %APPDATA%\wslenv\config.cue

Every field can be overridden with a WSLENV_<FIELD> environment variable,
e.g. WSLENV_STORE_PATH. WSLENV_CONFIG_DIR relocates the directory itself.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return err
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, app.flags.verbose))
		if rendered, renderErr := issue.Get(issue.ConfigLoadFailedID).Render("auto"); renderErr == nil {
			fmt.Fprint(app.stderr, rendered)
		}
		return &ExitError{Code: 1, Err: err}
	}

	out := app.stdout
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	cfgPath := app.flags.configPath
	if cfgPath == "" {
		cfgPath = configFilePath(app)
	}
	if cfgPath != "" && fileExists(cfgPath) {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("config file"), cfgPath)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	storePath := cfg.StorePath
	if storePath == "" {
		if p, err := store.DefaultPath(); err == nil {
			storePath = p + " " + SubtitleStyle.Render("(default)")
		} else {
			storePath = SubtitleStyle.Render("(unavailable: " + err.Error() + ")")
		}
	}
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("store_path"), valueStyle.Render(storePath))
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("launcher"), valueStyle.Render(cfg.Launcher))
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("log_level"), valueStyle.Render(cfg.LogLevel.String()))
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("output"), valueStyle.Render(cfg.Output.String()))

	return nil
}

func showConfigPath(app *App) error {
	path := configFilePath(app)
	if path == "" {
		return fmt.Errorf("failed to determine configuration directory")
	}
	_, err := fmt.Fprintln(app.stdout, path)
	return err
}

func initConfig(app *App, force bool) error {
	path, written, err := config.CreateDefaultConfig(app.configDir, force)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if written {
		fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	} else {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s (use --force to overwrite)\n", WarningStyle.Render("!"), path)
	}
	return nil
}

// configFilePath returns the config file location for app, or "" when the
// config directory cannot be determined.
func configFilePath(app *App) string {
	if app.configDir != "" {
		return filepath.Join(app.configDir, config.ConfigFileName+"."+config.ConfigFileExt)
	}
	path, err := config.ConfigFilePath()
	if err != nil {
		return ""
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
