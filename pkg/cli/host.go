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

package cli

import (
	"fmt"
	"io"

	"github.com/codeslayer-plugins/launcher/pkg/launchconf"
	"github.com/codeslayer-plugins/launcher/pkg/project"
)

// cliHost presents a single project as the active editor. The last
// notification becomes the command's error.
type cliHost struct {
	project *project.Project
	lastErr string
}

func (h *cliHost) ActiveProject() (*project.Project, bool) {
	return h.project, h.project != nil
}

func (h *cliHost) NotifyError(msg string) {
	h.lastErr = msg
}

// printForm renders the properties pane as text and answers Values from
// fixed inputs.
type printForm struct {
	out        io.Writer
	executable string
	parameters string
	terminal   bool
}

func (f *printForm) Show(p *project.Project, cfg launchconf.Config, ok bool) {
	if !ok {
		_, _ = fmt.Fprintf(f.out, "no launch configuration for %s\n", p)
		return
	}
	_, _ = fmt.Fprintf(f.out, "executable: %s\n", cfg.Executable())
	_, _ = fmt.Fprintf(f.out, "parameters: %s\n", cfg.Parameters())
	_, _ = fmt.Fprintf(f.out, "terminal:   %t\n", cfg.Terminal())
}

func (f *printForm) Values() (executable, parameters string, terminal bool) {
	return f.executable, f.parameters, f.terminal
}
