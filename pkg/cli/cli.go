// CodeSlayer Launcher
// Copyright (c) 2026 The CodeSlayer Launcher Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of CodeSlayer Launcher.
//
// CodeSlayer Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CodeSlayer Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CodeSlayer Launcher.  If not, see <http://www.gnu.org/licenses/>.

// Package cli is a standalone host for the launcher: each command stands in
// for an editor action on a project directory.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/codeslayer-plugins/launcher/pkg/config"
	"github.com/codeslayer-plugins/launcher/pkg/helpers/command"
	"github.com/codeslayer-plugins/launcher/pkg/launchconf"
	"github.com/codeslayer-plugins/launcher/pkg/launcher"
	"github.com/codeslayer-plugins/launcher/pkg/plugin"
	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App holds the collaborators shared by all commands. The zero value is
// not usable; start from NewApp.
type App struct {
	Fs     afero.Fs
	Exec   command.Executor
	Getenv func(string) string

	cfg     *config.Instance
	cfgPath string
	debug   bool
}

func NewApp() *App {
	return &App{
		Fs:     afero.NewOsFs(),
		Exec:   &command.RealExecutor{},
		Getenv: os.Getenv,
	}
}

// NewRootCmd builds the command tree bound to app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Run the program configured for a project",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&app.cfgPath, "config", "", "path to the settings file")
	root.PersistentFlags().BoolVar(&app.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newLaunchCmd(app),
		newConfigCmd(app),
		newWatchCmd(app),
		newVersionCmd(),
	)
	return root
}

func (a *App) loadConfig() error {
	var (
		cfg *config.Instance
		err error
	)
	if a.cfgPath != "" {
		cfg, err = config.NewConfigAt(a.cfgPath, config.BaseDefaults)
	} else {
		cfg, err = config.NewConfig(config.ConfigDir(), config.BaseDefaults)
	}
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cfg.SetDebugLogging(cfg.DebugLogging() || a.debug)
	a.cfg = cfg
	log.Debug().Str("path", cfg.Path()).Msg("settings loaded")
	return nil
}

func (a *App) store() *launchconf.Store {
	return launchconf.NewStore(a.Fs, a.cfg.Locator())
}

func (a *App) launcher(store launcher.Resolver) (*launcher.Launcher, error) {
	opts := []launcher.Option{launcher.WithEnv(a.Getenv)}
	term, err := a.cfg.TerminalCommand()
	if err != nil {
		return nil, err
	}
	if term != nil {
		opts = append(opts, launcher.WithTerminal(term))
	}
	return launcher.New(store, a.Exec, opts...), nil
}

// session activates the plugin against a single project for the duration
// of one command.
type session struct {
	hooks  *plugin.Hooks
	engine *plugin.Engine
	host   *cliHost
	store  *launchconf.Store
}

func (a *App) openSession(p *project.Project, form plugin.PropertiesForm) (*session, error) {
	store := a.store()
	l, err := a.launcher(store)
	if err != nil {
		return nil, err
	}
	host := &cliHost{project: p}
	hooks := plugin.NewHooks()
	return &session{
		hooks:  hooks,
		engine: plugin.Activate(host, hooks, form, l, store),
		host:   host,
		store:  store,
	}, nil
}

func (s *session) close() error {
	s.engine.Deactivate()
	if s.host.lastErr != "" {
		return errors.New(s.host.lastErr)
	}
	return nil
}

func projectArg(args []string) (*project.Project, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	p, err := project.New(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}
	return p, nil
}

// Execute runs the command tree with the process arguments.
func Execute(ctx context.Context, app *App) error {
	return NewRootCmd(app).ExecuteContext(ctx)
}
