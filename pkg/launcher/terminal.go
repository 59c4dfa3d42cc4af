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
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/rs/zerolog/log"
)

// defaultTerminals are tried in order when no terminal is configured. Each
// entry is the argv prefix placed before the program to run.
var defaultTerminals = [][]string{
	{"x-terminal-emulator", "-e"},
	{"gnome-terminal", "--"},
	{"konsole", "-e"},
	{"xfce4-terminal", "-x"},
	{"xterm", "-e"},
}

// ParseTerminal splits a configured terminal command line, such as
// "kitty -e", into an argv prefix.
func ParseTerminal(s string) ([]string, error) {
	argv, err := shlex.Split(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid terminal command %q: %w", s, err)
	}
	return argv, nil
}

// resolveTerminal picks the argv prefix for terminal launches: the
// configured terminal, then $TERMINAL with -e, then the first default
// terminal found on PATH.
func (l *Launcher) resolveTerminal() ([]string, error) {
	if len(l.terminal) > 0 {
		return l.terminal, nil
	}

	if env := strings.TrimSpace(l.getenv("TERMINAL")); env != "" {
		argv, err := ParseTerminal(env)
		if err == nil && len(argv) > 0 {
			if len(argv) == 1 {
				argv = append(argv, "-e")
			}
			return argv, nil
		}
		log.Warn().Err(err).Str("TERMINAL", env).Msg("ignoring unusable TERMINAL")
	}

	for _, term := range defaultTerminals {
		if _, err := l.exec.LookPath(term[0]); err == nil {
			log.Debug().Strs("terminal", term).Msg("using detected terminal")
			return term, nil
		}
	}
	return nil, ErrNoTerminal
}
