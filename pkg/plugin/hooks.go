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
	"slices"

	"github.com/codeslayer-plugins/launcher/pkg/helpers/syncutil"
	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/rs/zerolog/log"
)

// HookID identifies a registered handler.
type HookID int

type (
	// RunFunc handles the global "Run" action.
	RunFunc func(ctx context.Context)
	// ProjectRunFunc handles "Run" on a project tree selection.
	ProjectRunFunc func(ctx context.Context, selections []project.Selection)
	// PropertiesFunc handles the project properties panel being opened or
	// saved.
	PropertiesFunc func(p *project.Project)
)

type hook[F any] struct {
	fn F
	id HookID
}

// Hooks is a registry of handlers for host events. Fire methods call
// handlers synchronously on the caller's goroutine, in registration order.
// Handlers may register or remove hooks while being fired.
type Hooks struct {
	run              []hook[RunFunc]
	projectRun       []hook[ProjectRunFunc]
	propertiesOpened []hook[PropertiesFunc]
	propertiesSaved  []hook[PropertiesFunc]
	mu               syncutil.RWMutex
	nextID           HookID
}

func NewHooks() *Hooks {
	return &Hooks{}
}

func (h *Hooks) newID() HookID {
	h.nextID++
	return h.nextID
}

func (h *Hooks) OnRun(fn RunFunc) HookID {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.newID()
	h.run = append(h.run, hook[RunFunc]{id: id, fn: fn})
	return id
}

func (h *Hooks) OnProjectRun(fn ProjectRunFunc) HookID {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.newID()
	h.projectRun = append(h.projectRun, hook[ProjectRunFunc]{id: id, fn: fn})
	return id
}

func (h *Hooks) OnPropertiesOpened(fn PropertiesFunc) HookID {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.newID()
	h.propertiesOpened = append(h.propertiesOpened, hook[PropertiesFunc]{id: id, fn: fn})
	return id
}

func (h *Hooks) OnPropertiesSaved(fn PropertiesFunc) HookID {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.newID()
	h.propertiesSaved = append(h.propertiesSaved, hook[PropertiesFunc]{id: id, fn: fn})
	return id
}

func without[F any](hooks []hook[F], id HookID) ([]hook[F], bool) {
	i := slices.IndexFunc(hooks, func(h hook[F]) bool { return h.id == id })
	if i < 0 {
		return hooks, false
	}
	return slices.Delete(slices.Clone(hooks), i, i+1), true
}

// Remove unregisters a handler. Unknown IDs are ignored, so it's safe to
// call more than once.
func (h *Hooks) Remove(id HookID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var ok bool
	if h.run, ok = without(h.run, id); ok {
		log.Debug().Int("hook_id", int(id)).Msg("run hook removed")
		return
	}
	if h.projectRun, ok = without(h.projectRun, id); ok {
		log.Debug().Int("hook_id", int(id)).Msg("project run hook removed")
		return
	}
	if h.propertiesOpened, ok = without(h.propertiesOpened, id); ok {
		log.Debug().Int("hook_id", int(id)).Msg("properties opened hook removed")
		return
	}
	if h.propertiesSaved, ok = without(h.propertiesSaved, id); ok {
		log.Debug().Int("hook_id", int(id)).Msg("properties saved hook removed")
	}
}

// Len returns the number of registered handlers across all events.
func (h *Hooks) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.run) + len(h.projectRun) + len(h.propertiesOpened) + len(h.propertiesSaved)
}

func (h *Hooks) FireRun(ctx context.Context) {
	h.mu.RLock()
	hooks := h.run
	h.mu.RUnlock()
	for _, hk := range hooks {
		hk.fn(ctx)
	}
}

func (h *Hooks) FireProjectRun(ctx context.Context, selections []project.Selection) {
	h.mu.RLock()
	hooks := h.projectRun
	h.mu.RUnlock()
	for _, hk := range hooks {
		hk.fn(ctx, selections)
	}
}

func (h *Hooks) FirePropertiesOpened(p *project.Project) {
	h.mu.RLock()
	hooks := h.propertiesOpened
	h.mu.RUnlock()
	for _, hk := range hooks {
		hk.fn(p)
	}
}

func (h *Hooks) FirePropertiesSaved(p *project.Project) {
	h.mu.RLock()
	hooks := h.propertiesSaved
	h.mu.RUnlock()
	for _, hk := range hooks {
		hk.fn(p)
	}
}
