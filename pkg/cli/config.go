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

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change a project's launch configuration",
	}
	cmd.AddCommand(
		newConfigGetCmd(app),
		newConfigSetCmd(app),
		newConfigClearCmd(app),
		newConfigPathCmd(app),
	)
	return cmd
}

func newConfigGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get [project-dir]",
		Short: "Print the launch configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projectArg(args)
			if err != nil {
				return err
			}
			s, err := app.openSession(p, &printForm{out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			s.hooks.FirePropertiesOpened(p)
			return s.close()
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	var (
		exe      string
		params   string
		terminal bool
	)

	cmd := &cobra.Command{
		Use:   "set <project-dir>",
		Short: "Set the launch configuration",
		Long: `Set the launch configuration. Flags left out keep their current
value. Setting both --exe and --args to empty removes the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projectArg(args)
			if err != nil {
				return err
			}

			form := &printForm{out: cmd.OutOrStdout()}
			s, err := app.openSession(p, form)
			if err != nil {
				return err
			}

			current, _ := s.store.Resolve(p)
			form.executable = current.Executable()
			form.parameters = current.Parameters()
			form.terminal = current.Terminal()
			if cmd.Flags().Changed("exe") {
				form.executable = exe
			}
			if cmd.Flags().Changed("args") {
				form.parameters = params
			}
			if cmd.Flags().Changed("terminal") {
				form.terminal = terminal
			}

			s.hooks.FirePropertiesSaved(p)
			return s.close()
		},
	}

	cmd.Flags().StringVar(&exe, "exe", "", "program to run")
	cmd.Flags().StringVar(&params, "args", "", "parameters appended to the program")
	cmd.Flags().BoolVar(&terminal, "terminal", false, "run inside a terminal emulator")
	return cmd
}

func newConfigClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <project-dir>",
		Short: "Remove the launch configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projectArg(args)
			if err != nil {
				return err
			}
			if err := app.store().Clear(p); err != nil {
				return fmt.Errorf("failed to clear launch config: %w", err)
			}
			return nil
		},
	}
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path [project-dir]",
		Short: "Print where the launch configuration is stored",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projectArg(args)
			if err != nil {
				return err
			}
			path, err := app.store().Path(p)
			if err != nil {
				return fmt.Errorf("failed to locate launch config: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
