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

// Package command provides the process-spawn facility used to launch
// configured programs, behind an interface so tests never start real
// processes.
package command

import (
	"context"
	"fmt"
	"os/exec"
)

// StartOptions configures command startup behavior.
type StartOptions struct {
	// Dir is the working directory of the new process. Empty inherits the
	// caller's working directory.
	Dir string
	// Detached starts the process in its own session with no controlling
	// terminal and no inherited stdio. On Windows it maps to
	// DETACHED_PROCESS in a new process group.
	Detached bool
	// HideWindow prevents a console window from appearing (Windows-only).
	HideWindow bool
}

// Executor starts system commands without waiting for them.
type Executor interface {
	// StartWithOptions starts a command without waiting for it to
	// complete (fire-and-forget). Returns an error if it fails to start.
	StartWithOptions(ctx context.Context, opts StartOptions, name string, args ...string) error

	// LookPath searches for an executable in the directories named by PATH.
	LookPath(file string) (string, error)
}

// RealExecutor uses exec.Command to start real processes.
type RealExecutor struct{}

// LookPath resolves file against PATH.
//
//nolint:wrapcheck // exec.Error already names the file
func (*RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func start(ctx context.Context, opts StartOptions, name string, args ...string) (*exec.Cmd, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	// The spawned program outlives the request that started it, so the
	// caller's cancellation must not kill it.
	cmd := exec.CommandContext(context.WithoutCancel(ctx), name, args...)
	cmd.Dir = opts.Dir
	applySysProcAttr(cmd, opts)

	if err := cmd.Start(); err != nil {
		return nil, err //nolint:wrapcheck // callers wrap with the full command line
	}
	return cmd, nil
}

// StartWithOptions starts a command and returns as soon as the process
// exists. Detached processes are reaped in the background so they never
// linger as zombies; no handle is returned to the caller.
func (*RealExecutor) StartWithOptions(
	ctx context.Context,
	opts StartOptions,
	name string,
	args ...string,
) error {
	cmd, err := start(ctx, opts, name, args...)
	if err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
