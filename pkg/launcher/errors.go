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

package launcher

import (
	"errors"
	"fmt"

	"github.com/codeslayer-plugins/launcher/pkg/project"
)

var (
	// ErrNoConfiguration matches a NoConfigurationError.
	ErrNoConfiguration = errors.New("no launch configuration")
	// ErrNoActiveProject is returned when a run is requested with no
	// project in focus and nothing selected.
	ErrNoActiveProject = errors.New("no active project")
	// ErrLaunchFailed matches a LaunchFailedError.
	ErrLaunchFailed = errors.New("launch failed")
	// ErrNoExecutable means the configuration names nothing to run.
	ErrNoExecutable = errors.New("no executable configured")
	// ErrNoTerminal means a terminal launch was requested but no terminal
	// emulator could be found.
	ErrNoTerminal = errors.New("no terminal emulator found")
)

// NoConfigurationError is returned by Launch for a project without a
// launch configuration.
type NoConfigurationError struct {
	Project *project.Project
}

func (e *NoConfigurationError) Error() string {
	return fmt.Sprintf("There is no launch config for project %s.", e.Project)
}

func (*NoConfigurationError) Is(target error) bool {
	return target == ErrNoConfiguration
}

// LaunchFailedError carries the command line that could not be started and
// the underlying cause, usually an OS error.
type LaunchFailedError struct {
	Err     error
	Command string
}

func (e *LaunchFailedError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Command, e.Err)
}

func (e *LaunchFailedError) Unwrap() error {
	return e.Err
}

func (*LaunchFailedError) Is(target error) bool {
	return target == ErrLaunchFailed
}
