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
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrWatchUnsupported is returned by Watch when the store is not backed by
// the OS filesystem.
var ErrWatchUnsupported = errors.New("watching requires an OS filesystem")

// watchDebounce coalesces the burst of events an atomic save produces.
const watchDebounce = 100 * time.Millisecond

// ChangeFunc receives the freshly resolved configuration after a change.
type ChangeFunc func(cfg Config, ok bool)

// Watch calls fn every time the launch config of p is created, replaced or
// removed, until ctx is cancelled. It blocks; the project's config
// directory is created if needed so it can be watched.
func (s *Store) Watch(ctx context.Context, p *project.Project, fn ChangeFunc) error {
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return ErrWatchUnsupported
	}

	path, err := s.Path(p)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("error closing launch config watcher")
		}
	}()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Debug().Str("dir", dir).Str("project", p.Name).Msg("watching launch config")

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != FileName || event.Op == fsnotify.Chmod {
				continue
			}
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("fsnotify error")
		case <-debounce.C:
			cfg, ok := s.Resolve(p)
			fn(cfg, ok)
		}
	}
}
