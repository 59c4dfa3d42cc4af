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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/codeslayer-plugins/launcher/pkg/cli"
	"github.com/codeslayer-plugins/launcher/pkg/helpers"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := helpers.InitLogging(helpers.LogDir(), nil); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	//nolint:wrapcheck // errors are already user facing
	return cli.Execute(ctx, cli.NewApp())
}
