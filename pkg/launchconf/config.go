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

// Package launchconf stores one launch configuration per project in a
// launcher.conf key-file inside the project's configuration directory.
package launchconf

import (
	"strings"

	"github.com/codeslayer-plugins/launcher/pkg/project"
)

// Config associates a project with how to run it. It is a value type;
// build new ones with New rather than editing fields.
type Config struct {
	project    *project.Project
	executable string
	parameters string
	terminal   bool
}

// New returns a Config for p with executable and parameters trimmed of
// surrounding whitespace.
func New(p *project.Project, executable, parameters string, terminal bool) Config {
	return Config{
		project:    p,
		executable: strings.TrimSpace(executable),
		parameters: strings.TrimSpace(parameters),
		terminal:   terminal,
	}
}

// Project returns the owning project. The pointer is borrowed from the
// caller that built the Config.
func (c Config) Project() *project.Project { return c.project }

func (c Config) Executable() string { return c.executable }

func (c Config) Parameters() string { return c.parameters }

// Terminal reports whether the program should run inside a terminal.
func (c Config) Terminal() bool { return c.terminal }

// IsEmpty reports whether there is nothing worth persisting. Saving an
// empty Config deletes the project's configuration.
func (c Config) IsEmpty() bool {
	return c.executable == "" && c.parameters == ""
}

// Usable reports whether the Config names something to run.
func (c Config) Usable() bool {
	return c.executable != ""
}

// Equal compares field values and project identity.
func (c Config) Equal(other Config) bool {
	return c.project.SameAs(other.project) &&
		c.executable == other.executable &&
		c.parameters == other.parameters &&
		c.terminal == other.terminal
}

// CommandLine joins executable and parameters with a single space. Nothing
// is quoted or escaped: parameters are passed through exactly as stored, so
// arguments containing spaces must be quoted by whoever wrote them.
func (c Config) CommandLine() string {
	if c.parameters == "" {
		return c.executable
	}
	return c.executable + " " + c.parameters
}
