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

// Package plugin connects the launcher to a host editor. The host owns the
// UI and raises events through Hooks; an Engine, created by Activate,
// reacts to them and reports failures back through the Host.
package plugin

import (
	"github.com/codeslayer-plugins/launcher/pkg/launchconf"
	"github.com/codeslayer-plugins/launcher/pkg/project"
)

// Host is the editor the plugin runs inside.
type Host interface {
	// ActiveProject returns the project of the active editor, if any.
	ActiveProject() (*project.Project, bool)
	// NotifyError shows msg to the user.
	NotifyError(msg string)
}

// PropertiesForm is the launch settings pane of the project properties
// dialog.
type PropertiesForm interface {
	// Show fills the form for p. When ok is false the fields are cleared.
	Show(p *project.Project, cfg launchconf.Config, ok bool)
	// Values returns what the user entered, untrimmed.
	Values() (executable, parameters string, terminal bool)
}
