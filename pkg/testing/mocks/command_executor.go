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

package mocks

import (
	"context"

	"github.com/codeslayer-plugins/launcher/pkg/helpers/command"
	"github.com/stretchr/testify/mock"
)

// MockCommandExecutor is a testify mock for command.Executor.
// It records spawn requests without starting real processes.
type MockCommandExecutor struct {
	mock.Mock
}

// StartWithOptions mocks a fire-and-forget spawn. Note that args are
// matched as a []string, not variadically.
//
// Example:
//
//	mockCmd := &MockCommandExecutor{}
//	mockCmd.On("StartWithOptions", mock.Anything, command.StartOptions{Detached: true},
//		"/bin/echo", []string{"hi"}).Return(nil)
func (m *MockCommandExecutor) StartWithOptions(
	ctx context.Context,
	opts command.StartOptions,
	name string,
	args ...string,
) error {
	called := m.Called(ctx, opts, name, args)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return called.Error(0)
}

// LookPath mocks PATH resolution.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	called := m.Called(file)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return called.String(0), called.Error(1)
}
