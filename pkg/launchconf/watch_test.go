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
	"context"
	"testing"
	"time"

	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type change struct {
	cfg Config
	ok  bool
}

func TestWatch_ReportsSaveAndClear(t *testing.T) {
	// Parallel tests paused in t.Parallel already exist; only new goroutines count.
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	p, err := project.New(t.TempDir())
	require.NoError(t, err)
	store := NewStore(afero.NewOsFs(), project.DirLocator{})

	changes := make(chan change, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, p, func(cfg Config, ok bool) {
			changes <- change{cfg: cfg, ok: ok}
		})
	}()

	want := New(p, "/bin/echo", "watched", false)
	// The watcher may not be registered yet on the first attempts, so keep
	// saving until a change comes through.
	require.Eventually(t, func() bool {
		if saveErr := store.Save(want); saveErr != nil {
			return false
		}
		select {
		case c := <-changes:
			return c.ok && c.cfg.Equal(want)
		default:
			return false
		}
	}, 5*time.Second, 250*time.Millisecond)

	drain(changes)
	require.NoError(t, store.Clear(p))
	select {
	case c := <-changes:
		assert.False(t, c.ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported after clear")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_RequiresOSFilesystem(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), project.DirLocator{})
	err := store.Watch(context.Background(), &project.Project{Key: "k", Name: "n", Path: "/n"},
		func(Config, bool) {})

	require.ErrorIs(t, err, ErrWatchUnsupported)
}

func drain(ch chan change) {
	time.Sleep(2 * watchDebounce)
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
