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

// Package project models the host's notion of a project: a directory with a
// stable identity and a private configuration location.
package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// Project is a workspace unit. Values are shared by pointer and never
// mutated after construction.
type Project struct {
	// Key is stable for a given absolute path across runs and machines.
	Key string
	// Name is the display name, the base name of Path by default.
	Name string
	// Path is the absolute, cleaned project directory.
	Path string
}

// New returns the project rooted at dir.
func New(dir string) (*Project, error) {
	if dir == "" {
		return nil, errors.New("project directory is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}
	return &Project{
		Key:  KeyFor(abs),
		Name: filepath.Base(abs),
		Path: abs,
	}, nil
}

// KeyFor derives the project key from an absolute path.
func KeyFor(absPath string) string {
	u := url(absPath)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(u)).String()
}

func url(absPath string) string {
	return "file://" + filepath.ToSlash(absPath)
}

// SameAs reports whether p and other identify the same project.
func (p *Project) SameAs(other *Project) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Key == other.Key
}

func (p *Project) String() string {
	if p == nil {
		return "<none>"
	}
	return p.Name
}
