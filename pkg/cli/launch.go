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
	"github.com/spf13/cobra"
)

func newLaunchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "launch [project-dir]",
		Short: "Run the program configured for a project",
		Long: `Run the program configured for a project without waiting for it.

The command line is the executable followed by the parameters, exactly as
stored. Quote parameters containing spaces when setting them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projectArg(args)
			if err != nil {
				return err
			}
			s, err := app.openSession(p, &printForm{out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			s.hooks.FireRun(cmd.Context())
			return s.close()
		},
	}
}
