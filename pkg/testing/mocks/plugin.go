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
	"github.com/codeslayer-plugins/launcher/pkg/launchconf"
	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/stretchr/testify/mock"
)

// MockHost is a testify mock for plugin.Host.
type MockHost struct {
	mock.Mock
}

func (m *MockHost) ActiveProject() (*project.Project, bool) {
	called := m.Called()
	p, _ := called.Get(0).(*project.Project)
	return p, called.Bool(1)
}

func (m *MockHost) NotifyError(msg string) {
	m.Called(msg)
}

// MockPropertiesForm is a testify mock for plugin.PropertiesForm.
type MockPropertiesForm struct {
	mock.Mock
}

func (m *MockPropertiesForm) Show(p *project.Project, cfg launchconf.Config, ok bool) {
	m.Called(p, cfg, ok)
}

func (m *MockPropertiesForm) Values() (executable, parameters string, terminal bool) {
	called := m.Called()
	return called.String(0), called.String(1), called.Bool(2)
}
