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

package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/codeslayer-plugins/launcher/pkg/launcher"
	"github.com/codeslayer-plugins/launcher/pkg/project"
)

// TerminalCommand returns the configured terminal argv prefix, or nil if
// the terminal should be detected.
func (c *Instance) TerminalCommand() ([]string, error) {
	c.mu.RLock()
	term := c.vals.Launcher.Terminal
	c.mu.RUnlock()

	argv, err := launcher.ParseTerminal(term)
	if err != nil {
		return nil, fmt.Errorf("failed to parse launcher terminal: %w", err)
	}
	if len(argv) == 0 {
		return nil, nil
	}
	return argv, nil
}

func (c *Instance) SetTerminal(term string) error {
	if _, err := launcher.ParseTerminal(term); err != nil {
		return fmt.Errorf("failed to set terminal: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Launcher.Terminal = term
	return nil
}

func (c *Instance) StorageMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Storage.Mode == "" {
		return StorageModeProject
	}
	return c.vals.Storage.Mode
}

func (c *Instance) SetStorageMode(mode string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.vals
	next.Storage.Mode = mode
	if err := validateValues(&next); err != nil {
		return fmt.Errorf("failed to set storage mode: %w", err)
	}
	c.vals = next
	return nil
}

// StorageDirName is the per-project config directory name used in project
// storage mode.
func (c *Instance) StorageDirName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Storage.DirName == "" {
		return project.DefaultDirName
	}
	return c.vals.Storage.DirName
}

// DataDir is where per-project configs live in xdg storage mode.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// ConfigDir is the default directory of the application config file.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Locator returns the project config locator for the current storage mode.
func (c *Instance) Locator() project.Locator {
	if c.StorageMode() == StorageModeXDG {
		return project.XDGLocator{Root: DataDir()}
	}
	return project.DirLocator{DirName: c.StorageDirName()}
}
