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

package launchconf

import (
	"testing"

	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/stretchr/testify/assert"
)

func TestNew_Trims(t *testing.T) {
	t.Parallel()

	p := &project.Project{Key: "k"}
	cfg := New(p, "  /bin/echo  ", "\thi there \n", true)

	assert.Same(t, p, cfg.Project())
	assert.Equal(t, "/bin/echo", cfg.Executable())
	assert.Equal(t, "hi there", cfg.Parameters())
	assert.True(t, cfg.Terminal())
}

func TestConfig_IsEmptyAndUsable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		executable string
		parameters string
		empty      bool
		usable     bool
	}{
		{name: "both empty", empty: true},
		{name: "whitespace only", executable: "  ", parameters: "\t", empty: true},
		{name: "executable only", executable: "/bin/true", usable: true},
		{name: "parameters only", parameters: "--help"},
		{name: "both set", executable: "/bin/echo", parameters: "x", usable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := New(nil, tt.executable, tt.parameters, false)
			assert.Equal(t, tt.empty, cfg.IsEmpty())
			assert.Equal(t, tt.usable, cfg.Usable())
		})
	}
}

func TestConfig_CommandLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		executable string
		parameters string
		want       string
	}{
		{name: "executable and parameters", executable: "/bin/echo", parameters: "hello world", want: "/bin/echo hello world"},
		{name: "no parameters", executable: "/usr/bin/true", want: "/usr/bin/true"},
		{name: "trimmed before joining", executable: "  /bin/echo  ", parameters: "  hi  ", want: "/bin/echo hi"},
		{name: "no escaping", executable: "/bin/sh", parameters: "-c 'echo $HOME; ls'", want: "/bin/sh -c 'echo $HOME; ls'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, New(nil, tt.executable, tt.parameters, false).CommandLine())
		})
	}
}

func TestConfig_Equal(t *testing.T) {
	t.Parallel()

	a := &project.Project{Key: "a"}
	aCopy := &project.Project{Key: "a"}
	b := &project.Project{Key: "b"}

	base := New(a, "/bin/x", "-y", true)
	assert.True(t, base.Equal(New(aCopy, "/bin/x", " -y ", true)))
	assert.False(t, base.Equal(New(b, "/bin/x", "-y", true)))
	assert.False(t, base.Equal(New(a, "/bin/z", "-y", true)))
	assert.False(t, base.Equal(New(a, "/bin/x", "-y", false)))
	assert.True(t, Config{}.Equal(Config{}))
}
