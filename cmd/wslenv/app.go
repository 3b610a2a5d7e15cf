// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/invowk/wslenv/internal/config"
	"github.com/invowk/wslenv/internal/convert"
	"github.com/invowk/wslenv/internal/discovery"
	"github.com/invowk/wslenv/internal/store"

	"github.com/charmbracelet/log"
)

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer; every command handler receives it.
	App struct {
		Config    ConfigProvider
		stdout    io.Writer
		stderr    io.Writer
		configDir string
		flags     rootFlags
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
		// ConfigDir overrides the platform config directory.
		ConfigDir string
	}

	// rootFlags holds the persistent flags shared by all commands.
	rootFlags struct {
		configPath string
		storePath  string
		launcher   string
		verbose    bool
	}

	// session is the per-invocation service graph built from configuration.
	session struct {
		cfg       *config.Config
		logger    *slog.Logger
		store     *store.Store
		discovery *discovery.Discovery
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config:    deps.Config,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		configDir: deps.ConfigDir,
	}
}

// loadConfig loads configuration and applies the global flag overrides on
// top of it.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: a.flags.configPath,
		ConfigDirPath:  a.configDir,
	})
	if err != nil {
		return nil, err
	}

	if a.flags.storePath != "" {
		cfg.StorePath = a.flags.storePath
	}
	if a.flags.launcher != "" {
		cfg.Launcher = a.flags.launcher
	}
	if a.flags.verbose {
		cfg.LogLevel = config.LogLevelDebug
	}
	return cfg, nil
}

// newSession builds the logger, store, converter and discovery façade for
// one command invocation.
func (a *App) newSession(ctx context.Context) (*session, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	logger := a.newLogger(cfg.LogLevel)

	s, err := store.New(store.Options{Path: cfg.StorePath, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve environment store: %w", err)
	}

	c, err := convert.New(convert.Options{Launcher: cfg.Launcher, Logger: logger})
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:       cfg,
		logger:    logger,
		store:     s,
		discovery: discovery.New(s, c, discovery.WithLogger(logger)),
	}, nil
}

// newLogger returns a slog logger backed by a charmbracelet/log handler
// writing to stderr.
func (a *App) newLogger(level config.LogLevel) *slog.Logger {
	charmLevel, err := log.ParseLevel(level.String())
	if err != nil {
		charmLevel = log.WarnLevel
	}
	handler := log.NewWithOptions(a.stderr, log.Options{
		Prefix: "wslenv",
		Level:  charmLevel,
	})
	return slog.New(handler)
}
