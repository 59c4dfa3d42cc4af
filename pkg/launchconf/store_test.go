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
	"path/filepath"
	"strings"
	"testing"

	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, afero.Fs, *project.Project) {
	t.Helper()
	fs := afero.NewMemMapFs()
	p := &project.Project{Key: "p-key", Name: "app", Path: "/work/app"}
	return NewStore(fs, project.DirLocator{}), fs, p
}

func readConf(t *testing.T, fs afero.Fs, p *project.Project) string {
	t.Helper()
	data, err := afero.ReadFile(fs, filepath.Join(p.Path, project.DefaultDirName, FileName))
	require.NoError(t, err)
	return strings.ReplaceAll(string(data), "\r\n", "\n")
}

func TestResolve_AbsentIsNotFailure(t *testing.T) {
	t.Parallel()

	store, _, p := newTestStore(t)

	cfg, ok := store.Resolve(p)
	assert.False(t, ok)
	assert.Equal(t, Config{}, cfg)
}

func TestSaveResolve_RoundTrip(t *testing.T) {
	t.Parallel()

	store, _, p := newTestStore(t)

	require.NoError(t, store.Save(New(p, "/bin/echo", "hello world", true)))

	cfg, ok := store.Resolve(p)
	require.True(t, ok)
	assert.Same(t, p, cfg.Project())
	assert.Equal(t, "/bin/echo", cfg.Executable())
	assert.Equal(t, "hello world", cfg.Parameters())
	assert.True(t, cfg.Terminal())
}

func TestSave_FileFormat(t *testing.T) {
	t.Parallel()

	store, fs, p := newTestStore(t)

	require.NoError(t, store.Save(New(p, "/usr/bin/true", "", false)))

	assert.Equal(t,
		"[main]\nexecutable=/usr/bin/true\nparameters=\nterminal=false\n",
		readConf(t, fs, p))
}

func TestSave_WhitespaceNormalization(t *testing.T) {
	t.Parallel()

	store, fs, p := newTestStore(t)

	require.NoError(t, store.Save(Config{project: p, executable: "  /bin/echo  ", parameters: "  hi  "}))

	cfg, ok := store.Resolve(p)
	require.True(t, ok)
	assert.Equal(t, "/bin/echo", cfg.Executable())
	assert.Equal(t, "hi", cfg.Parameters())
	assert.Contains(t, readConf(t, fs, p), "executable=/bin/echo\n")
}

func TestSave_EmptyClears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		executable string
		parameters string
		prior      bool
	}{
		{name: "empty with prior config", prior: true},
		{name: "whitespace with prior config", executable: "   ", parameters: "\t", prior: true},
		{name: "empty without prior config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, fs, p := newTestStore(t)
			if tt.prior {
				require.NoError(t, store.Save(New(p, "/bin/ls", "-la", true)))
			}

			require.NoError(t, store.Save(New(p, tt.executable, tt.parameters, true)))

			_, ok := store.Resolve(p)
			assert.False(t, ok)

			path, err := store.Path(p)
			require.NoError(t, err)
			exists, err := afero.Exists(fs, path)
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestSave_ParametersOnlyIsPersisted(t *testing.T) {
	t.Parallel()

	store, _, p := newTestStore(t)

	require.NoError(t, store.Save(New(p, "", "--flag", false)))

	cfg, ok := store.Resolve(p)
	require.True(t, ok)
	assert.Empty(t, cfg.Executable())
	assert.Equal(t, "--flag", cfg.Parameters())
	assert.False(t, cfg.Usable())
}

func TestSave_Idempotent(t *testing.T) {
	t.Parallel()

	store, fs, p := newTestStore(t)
	cfg := New(p, "/bin/echo", "a b c", false)

	require.NoError(t, store.Save(cfg))
	first := readConf(t, fs, p)
	require.NoError(t, store.Save(cfg))
	second := readConf(t, fs, p)

	assert.Equal(t, first, second)
	got, ok := store.Resolve(p)
	require.True(t, ok)
	assert.True(t, got.Equal(cfg))
}

func TestSave_PreservesOtherSections(t *testing.T) {
	t.Parallel()

	store, fs, p := newTestStore(t)
	path, err := store.Path(p)
	require.NoError(t, err)
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, afero.WriteFile(fs, path,
		[]byte("[main]\nexecutable=/old\n\n[extra]\ncolor=blue\n"), 0o600))

	require.NoError(t, store.Save(New(p, "/new", "x", true)))

	content := readConf(t, fs, p)
	assert.Contains(t, content, "[extra]\ncolor=blue\n")
	assert.Contains(t, content, "executable=/new\n")
	assert.NotContains(t, content, "/old")
}

func TestSave_NoProject(t *testing.T) {
	t.Parallel()

	store, _, _ := newTestStore(t)

	err := store.Save(New(nil, "/bin/true", "", false))
	require.Error(t, err)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	store, fs, p := newTestStore(t)
	require.NoError(t, store.Save(New(p, "/bin/true", "", false)))
	require.NoError(t, store.Save(New(p, "/bin/false", "", false)))

	entries, err := afero.ReadDir(fs, filepath.Join(p.Path, project.DefaultDirName))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}

func TestResolve_MalformedKeysDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		executable string
		parameters string
		terminal   bool
	}{
		{
			name:    "empty file",
			content: "",
		},
		{
			name:       "missing keys",
			content:    "[main]\nexecutable=/bin/app\n",
			executable: "/bin/app",
		},
		{
			name:       "bad boolean",
			content:    "[main]\nexecutable=/bin/app\nterminal=maybe\n",
			executable: "/bin/app",
		},
		{
			name:       "glib style boolean",
			content:    "[main]\nexecutable=/bin/app\nterminal=true\n",
			executable: "/bin/app",
			terminal:   true,
		},
		{
			name:       "other section only",
			content:    "[other]\nexecutable=/bin/nope\n",
			executable: "",
		},
		{
			name:       "comment chars are literal",
			content:    "[main]\nexecutable=/bin/app\nparameters=--tag #1 ; done\n",
			executable: "/bin/app",
			parameters: "--tag #1 ; done",
		},
		{
			name:       "quotes are kept",
			content:    "[main]\nexecutable=/bin/app\nparameters=\"quoted arg\"\n",
			executable: "/bin/app",
			parameters: `"quoted arg"`,
		},
		{
			name:       "values are trimmed",
			content:    "[main]\nexecutable=   /bin/app   \n",
			executable: "/bin/app",
		},
		{
			name:       "interpolation syntax is literal",
			content:    "[main]\nexecutable=/bin/app\nparameters=%(executable)s\n",
			executable: "/bin/app",
			parameters: "%(executable)s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, fs, p := newTestStore(t)
			path, err := store.Path(p)
			require.NoError(t, err)
			require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o750))
			require.NoError(t, afero.WriteFile(fs, path, []byte(tt.content), 0o600))

			cfg, ok := store.Resolve(p)
			require.True(t, ok)
			assert.Equal(t, tt.executable, cfg.Executable())
			assert.Equal(t, tt.parameters, cfg.Parameters())
			assert.Equal(t, tt.terminal, cfg.Terminal())
		})
	}
}

func TestResolve_LocatorFailureIsAbsent(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), project.XDGLocator{})

	_, ok := store.Resolve(&project.Project{Key: "k", Name: "n", Path: "/n"})
	assert.False(t, ok)
}

func TestSave_SpecialCharactersRoundTrip(t *testing.T) {
	t.Parallel()

	params := []string{
		"--name=value --other:thing",
		"--comment '#not a comment' ; still args",
		"`backticked`",
		`"double quoted"`,
		`C:\path\to\thing \`,
		`"""x`,
		`"""x""" y`,
		`"""`,
		`x""" y`,
		"line1\nline2",
		"a\nb\"\"\"c",
	}

	for _, want := range params {
		t.Run(want, func(t *testing.T) {
			t.Parallel()

			store, _, p := newTestStore(t)
			require.NoError(t, store.Save(New(p, "/bin/app", want, false)))

			cfg, ok := store.Resolve(p)
			require.True(t, ok)
			assert.Equal(t, want, cfg.Parameters())
		})
	}
}

func TestSave_TripleQuotedExecutable(t *testing.T) {
	t.Parallel()

	store, _, p := newTestStore(t)
	require.NoError(t, store.Save(New(p, `"""/opt/my app"""`, "-v", true)))

	cfg, ok := store.Resolve(p)
	require.True(t, ok)
	assert.Equal(t, `"""/opt/my app"""`, cfg.Executable())
	assert.Equal(t, "-v", cfg.Parameters())
}

func TestSave_RejectsValueThatDoesNotReadBack(t *testing.T) {
	t.Parallel()

	store, fs, p := newTestStore(t)
	require.NoError(t, store.Save(New(p, "/bin/app", "--keep", false)))
	before := readConf(t, fs, p)

	err := store.Save(New(p, "/bin/app", "a\"\"\"\nb", false))
	require.ErrorIs(t, err, ErrNotStorable)

	assert.Equal(t, before, readConf(t, fs, p), "previous file is untouched")
	cfg, ok := store.Resolve(p)
	require.True(t, ok)
	assert.Equal(t, "--keep", cfg.Parameters())
}

func TestClear(t *testing.T) {
	t.Parallel()

	store, _, p := newTestStore(t)

	require.NoError(t, store.Clear(p), "clearing nothing is fine")

	require.NoError(t, store.Save(New(p, "/bin/true", "", false)))
	require.NoError(t, store.Clear(p))

	_, ok := store.Resolve(p)
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("new config is written", func(t *testing.T) {
		t.Parallel()
		store, _, p := newTestStore(t)

		changed, err := store.Apply(p, " /bin/app ", "", false)
		require.NoError(t, err)
		assert.True(t, changed)

		cfg, ok := store.Resolve(p)
		require.True(t, ok)
		assert.Equal(t, "/bin/app", cfg.Executable())
	})

	t.Run("unchanged values are not rewritten", func(t *testing.T) {
		t.Parallel()
		store, fs, p := newTestStore(t)
		require.NoError(t, store.Save(New(p, "/bin/app", "-v", true)))
		path, err := store.Path(p)
		require.NoError(t, err)
		require.NoError(t, afero.WriteFile(fs, path,
			[]byte("[main]\nexecutable=/bin/app\nparameters=-v\nterminal=true\n# marker\n"), 0o600))

		changed, err := store.Apply(p, "/bin/app  ", "  -v", true)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Contains(t, readConf(t, fs, p), "# marker")
	})

	t.Run("terminal flip is a change", func(t *testing.T) {
		t.Parallel()
		store, _, p := newTestStore(t)
		require.NoError(t, store.Save(New(p, "/bin/app", "", false)))

		changed, err := store.Apply(p, "/bin/app", "", true)
		require.NoError(t, err)
		assert.True(t, changed)

		cfg, ok := store.Resolve(p)
		require.True(t, ok)
		assert.True(t, cfg.Terminal())
	})

	t.Run("empty without config is a no-op", func(t *testing.T) {
		t.Parallel()
		store, fs, p := newTestStore(t)

		changed, err := store.Apply(p, "", "  ", true)
		require.NoError(t, err)
		assert.False(t, changed)

		exists, err := afero.DirExists(fs, filepath.Join(p.Path, project.DefaultDirName))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("empty with config clears", func(t *testing.T) {
		t.Parallel()
		store, _, p := newTestStore(t)
		require.NoError(t, store.Save(New(p, "/bin/app", "", false)))

		changed, err := store.Apply(p, "", "", false)
		require.NoError(t, err)
		assert.True(t, changed)

		_, ok := store.Resolve(p)
		assert.False(t, ok)
	})

	t.Run("empty over hand-written empty file clears", func(t *testing.T) {
		t.Parallel()
		store, fs, p := newTestStore(t)
		path, err := store.Path(p)
		require.NoError(t, err)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, afero.WriteFile(fs, path,
			[]byte("[main]\nexecutable=\nparameters=\nterminal=false\n"), 0o600))

		changed, err := store.Apply(p, "", "", false)
		require.NoError(t, err)
		assert.True(t, changed)

		_, ok := store.Resolve(p)
		assert.False(t, ok)
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestStore_EndToEndLifecycle(t *testing.T) {
	t.Parallel()

	store, _, p := newTestStore(t)

	_, ok := store.Resolve(p)
	require.False(t, ok)

	require.NoError(t, store.Save(New(p, "/usr/bin/true", "", false)))
	cfg, ok := store.Resolve(p)
	require.True(t, ok)
	assert.Equal(t, "/usr/bin/true", cfg.Executable())
	assert.Empty(t, cfg.Parameters())
	assert.False(t, cfg.Terminal())

	require.NoError(t, store.Save(New(p, "", "", false)))
	_, ok = store.Resolve(p)
	assert.False(t, ok)
}
