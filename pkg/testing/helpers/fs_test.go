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
	"path/filepath"
	"testing"

	"github.com/codeslayer-plugins/launcher/pkg/launchconf"
	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLaunchConf_ReadableByStore(t *testing.T) {
	t.Parallel()

	h := NewMemoryFS()
	p := &project.Project{Key: "k", Name: "demo", Path: "/work/demo"}
	configDir := filepath.Join(p.Path, project.DefaultDirName)

	path, err := h.WriteLaunchConf(configDir, "/bin/echo", "hi there", true)
	require.NoError(t, err)
	assert.True(t, h.FileExists(path))

	cfg, ok := launchconf.NewStore(h.Fs, project.DirLocator{}).Resolve(p)
	require.True(t, ok)
	assert.Equal(t, "/bin/echo", cfg.Executable())
	assert.Equal(t, "hi there", cfg.Parameters())
	assert.True(t, cfg.Terminal())
}

func TestCreateDirectoryStructure(t *testing.T) {
	t.Parallel()

	h := NewMemoryFS()
	require.NoError(t, h.CreateDirectoryStructure(map[string]any{
		"/work": map[string]any{
			"demo": map[string]any{
				"main.go": "package main\n",
				"bin":     []byte{0x7f, 'E', 'L', 'F'},
				"empty":   nil,
			},
		},
	}))

	names, err := h.ListFiles("/work/demo")
	require.NoError(t, err)
	assert.Equal(t, []string{"bin", "empty", "main.go"}, names)

	data, err := h.ReadFile("/work/demo/main.go")
	require.NoError(t, err)
	assert.Equal(t, "package main\n", string(data))
	assert.False(t, h.FileExists("/work/demo/missing"))
}
