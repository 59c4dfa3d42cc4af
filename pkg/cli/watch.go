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

	"github.com/codeslayer-plugins/launcher/pkg/launchconf"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [project-dir]",
		Short: "Print the launch configuration every time it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projectArg(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			form := &printForm{out: out}

			_, _ = fmt.Fprintf(out, "watching %s\n", p.Path)
			err = app.store().Watch(cmd.Context(), p, func(cfg launchconf.Config, ok bool) {
				form.Show(p, cfg, ok)
			})
			if err != nil {
				return fmt.Errorf("failed to watch launch config: %w", err)
			}
			return nil
		},
	}
}
