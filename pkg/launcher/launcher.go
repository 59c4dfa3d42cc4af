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

// Package launcher runs the program configured for a project, either
// directly or inside a terminal emulator.
//
// The command line is the configured executable, a space and the
// configured parameters, exactly as stored. It is split into arguments with
// shell-like quoting rules but never passed through a shell, and nothing is
// escaped on the way: parameters containing spaces or quotes must already be
// quoted by whoever saved them.
package launcher

import (
	"context"
	"os"

	"github.com/codeslayer-plugins/launcher/pkg/helpers/command"
	"github.com/codeslayer-plugins/launcher/pkg/launchconf"
	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/google/shlex"
	"github.com/rs/zerolog/log"
)

// Resolver looks up the launch configuration of a project.
type Resolver interface {
	Resolve(p *project.Project) (launchconf.Config, bool)
}

// Launcher starts configured programs. It holds no per-launch state and
// never keeps a handle on what it started.
type Launcher struct {
	store    Resolver
	exec     command.Executor
	getenv   func(string) string
	terminal []string
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithTerminal sets the argv prefix used for terminal launches, skipping
// detection.
func WithTerminal(argv []string) Option {
	return func(l *Launcher) {
		l.terminal = append([]string(nil), argv...)
	}
}

// WithEnv replaces the environment lookup used for $TERMINAL.
func WithEnv(getenv func(string) string) Option {
	return func(l *Launcher) {
		l.getenv = getenv
	}
}

// New returns a Launcher resolving configurations from store and spawning
// through exec.
func New(store Resolver, exec command.Executor, opts ...Option) *Launcher {
	l := &Launcher{
		store:  store,
		exec:   exec,
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// BuildCommand returns the command line for cfg.
func BuildCommand(cfg launchconf.Config) string {
	return cfg.CommandLine()
}

// Launch starts the program configured for p and returns without waiting
// for it. A project without configuration yields a *NoConfigurationError;
// anything that prevents the program from starting yields a
// *LaunchFailedError. Nothing is retried.
func (l *Launcher) Launch(ctx context.Context, p *project.Project) error {
	if p == nil {
		return ErrNoActiveProject
	}

	cfg, ok := l.store.Resolve(p)
	if !ok {
		log.Info().Str("project", p.Name).Msg("no launch config for project")
		return &NoConfigurationError{Project: p}
	}

	cmdline := BuildCommand(cfg)
	if !cfg.Usable() {
		return &LaunchFailedError{Command: cmdline, Err: ErrNoExecutable}
	}

	argv, err := shlex.Split(cmdline)
	if err != nil {
		return &LaunchFailedError{Command: cmdline, Err: err}
	}
	if len(argv) == 0 {
		return &LaunchFailedError{Command: cmdline, Err: ErrNoExecutable}
	}

	if cfg.Terminal() {
		term, err := l.resolveTerminal()
		if err != nil {
			return &LaunchFailedError{Command: cmdline, Err: err}
		}
		argv = append(append([]string(nil), term...), argv...)
	}

	opts := command.StartOptions{
		Dir:      p.Path,
		Detached: true,
	}
	log.Info().
		Str("project", p.Name).
		Str("command", cmdline).
		Bool("terminal", cfg.Terminal()).
		Msg("launching")

	if err := l.exec.StartWithOptions(ctx, opts, argv[0], argv[1:]...); err != nil {
		log.Error().Err(err).Str("command", cmdline).Msg("launch failed")
		return &LaunchFailedError{Command: cmdline, Err: err}
	}
	return nil
}

// LaunchSelection launches the project owning the first selection.
func (l *Launcher) LaunchSelection(ctx context.Context, selections []project.Selection) error {
	p := project.FromSelections(selections)
	if p == nil {
		return ErrNoActiveProject
	}
	return l.Launch(ctx, p)
}
