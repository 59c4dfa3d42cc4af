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

package helpers

import (
	"errors"
	"os/exec"

	"github.com/codeslayer-plugins/launcher/pkg/testing/mocks"
	"github.com/stretchr/testify/mock"
)

// NewMockCommandExecutor creates a MockCommandExecutor whose spawns succeed
// and whose PATH contains nothing. Override with On() after clearing
// ExpectedCalls when a test needs exact behavior:
//
//	cmd := helpers.NewMockCommandExecutor()
//	cmd.ExpectedCalls = nil
//	cmd.On("LookPath", "xterm").Return("/usr/bin/xterm", nil)
func NewMockCommandExecutor() *mocks.MockCommandExecutor {
	cmd := &mocks.MockCommandExecutor{}
	cmd.On(
		"StartWithOptions", mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.Anything,
	).Return(nil).Maybe()
	cmd.On("LookPath", mock.AnythingOfType("string")).Return("", exec.ErrNotFound).Maybe()
	return cmd
}

// NewFailingCommandExecutor creates a MockCommandExecutor whose spawns all
// fail with err.
func NewFailingCommandExecutor(err error) *mocks.MockCommandExecutor {
	if err == nil {
		err = errors.New("spawn failed")
	}
	cmd := &mocks.MockCommandExecutor{}
	cmd.On(
		"StartWithOptions", mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.Anything,
	).Return(err).Maybe()
	cmd.On("LookPath", mock.AnythingOfType("string")).Return("", exec.ErrNotFound).Maybe()
	return cmd
}
