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

package project

import (
	"errors"
	"path/filepath"
)

// DefaultDirName is the per-project configuration directory used by
// DirLocator when none is set.
const DefaultDirName = ".codeslayer"

var errNoProject = errors.New("no project")

// Locator yields the private configuration directory of a project. The
// directory may not exist yet.
type Locator interface {
	ConfigDir(p *Project) (string, error)
}

// LocatorFunc adapts a plain function to Locator.
type LocatorFunc func(p *Project) (string, error)

func (f LocatorFunc) ConfigDir(p *Project) (string, error) {
	return f(p)
}

// DirLocator keeps configuration inside the project directory.
type DirLocator struct {
	DirName string
}

func (l DirLocator) ConfigDir(p *Project) (string, error) {
	if p == nil {
		return "", errNoProject
	}
	name := l.DirName
	if name == "" {
		name = DefaultDirName
	}
	return filepath.Join(p.Path, name), nil
}

// XDGLocator keeps configuration outside the project, under Root keyed by
// the project key.
type XDGLocator struct {
	Root string
}

func (l XDGLocator) ConfigDir(p *Project) (string, error) {
	if p == nil {
		return "", errNoProject
	}
	if l.Root == "" {
		return "", errors.New("config root not set")
	}
	return filepath.Join(l.Root, "projects", p.Key), nil
}
