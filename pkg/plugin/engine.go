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

package plugin

import (
	"context"
	"errors"

	"github.com/codeslayer-plugins/launcher/pkg/launchconf"
	"github.com/codeslayer-plugins/launcher/pkg/launcher"
	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/rs/zerolog/log"
)

const MsgNoOpenEditors = "There are no open editors. Not able to determine what program to run."

// Runner starts the configured program of a project.
type Runner interface {
	Launch(ctx context.Context, p *project.Project) error
}

// Store reads and updates launch configurations.
type Store interface {
	Resolve(p *project.Project) (launchconf.Config, bool)
	Apply(p *project.Project, executable, parameters string, terminal bool) (bool, error)
}

// Engine holds everything an active plugin instance needs. It replaces
// process-wide state: each Activate call returns an independent Engine.
type Engine struct {
	host   Host
	hooks  *Hooks
	form   PropertiesForm
	runner Runner
	store  Store
	ids    []HookID
}

// Activate registers the launcher's handlers on hooks and returns the
// Engine owning them.
func Activate(host Host, hooks *Hooks, form PropertiesForm, runner Runner, store Store) *Engine {
	e := &Engine{
		host:   host,
		hooks:  hooks,
		form:   form,
		runner: runner,
		store:  store,
	}

	e.ids = append(e.ids,
		hooks.OnRun(e.handleRun),
		hooks.OnProjectRun(e.handleProjectRun),
		hooks.OnPropertiesOpened(e.handlePropertiesOpened),
		hooks.OnPropertiesSaved(e.handlePropertiesSaved),
	)

	log.Debug().Int("hooks", len(e.ids)).Msg("launcher plugin activated")
	return e
}

// Deactivate removes every handler registered by Activate.
func (e *Engine) Deactivate() {
	for _, id := range e.ids {
		e.hooks.Remove(id)
	}
	e.ids = nil
	log.Debug().Msg("launcher plugin deactivated")
}

func (e *Engine) handleRun(ctx context.Context) {
	p, ok := e.host.ActiveProject()
	if !ok || p == nil {
		e.host.NotifyError(MsgNoOpenEditors)
		return
	}
	e.launch(ctx, p)
}

func (e *Engine) handleProjectRun(ctx context.Context, selections []project.Selection) {
	p := project.FromSelections(selections)
	if p == nil {
		e.host.NotifyError(MsgNoOpenEditors)
		return
	}
	e.launch(ctx, p)
}

func (e *Engine) launch(ctx context.Context, p *project.Project) {
	err := e.runner.Launch(ctx, p)
	if err == nil {
		return
	}

	if errors.Is(err, launcher.ErrNoActiveProject) {
		e.host.NotifyError(MsgNoOpenEditors)
		return
	}
	// NoConfigurationError and LaunchFailedError format themselves for
	// display.
	e.host.NotifyError(err.Error())
}

func (e *Engine) handlePropertiesOpened(p *project.Project) {
	cfg, ok := e.store.Resolve(p)
	e.form.Show(p, cfg, ok)
}

func (e *Engine) handlePropertiesSaved(p *project.Project) {
	exe, params, terminal := e.form.Values()
	changed, err := e.store.Apply(p, exe, params, terminal)
	if err != nil {
		log.Error().Err(err).Str("project", p.Name).Msg("failed to save launch config")
		e.host.NotifyError(err.Error())
		return
	}
	if changed {
		log.Info().Str("project", p.Name).Msg("launch config saved")
	}
}
