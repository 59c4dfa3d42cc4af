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
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/codeslayer-plugins/launcher/pkg/project"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	// FileName is the key-file kept in each project's config directory.
	FileName = "launcher.conf"

	sectionMain   = "main"
	keyExecutable = "executable"
	keyParameters = "parameters"
	keyTerminal   = "terminal"
)

// ErrNotStorable is returned by Save for a value the key-file cannot hold
// without changing it on the next read.
var ErrNotStorable = errors.New("value cannot be stored losslessly")

// Values are taken literally: '#' and ';' are not inline comments, a
// trailing backslash does not continue the line and surrounding quotes are
// part of the value.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

func init() {
	// Global to ini.v1: key=value with no padding, as GKeyFile writes it.
	ini.PrettyFormat = false
}

// encodeValue triple-quotes values that would otherwise be read back as the
// start of a triple-quoted string. ini.v1 only does this itself for values
// containing a newline or a backtick.
func encodeValue(v string) string {
	if strings.HasPrefix(v, `"""`) && !strings.ContainsAny(v, "\n`") {
		return `"""` + v + `"""`
	}
	return v
}

// decode reads the [main] section of file. Value, not String: String
// expands %(name)s references, which would rewrite parameters that happen
// to contain them.
func decode(p *project.Project, file *ini.File) Config {
	sec := file.Section(sectionMain)
	return New(
		p,
		sec.Key(keyExecutable).Value(),
		sec.Key(keyParameters).Value(),
		sec.Key(keyTerminal).MustBool(false),
	)
}

// Store resolves and persists launch configurations. It keeps no state
// between calls; every Resolve reads the file and every Save rewrites it.
type Store struct {
	fs      afero.Fs
	locator project.Locator
}

// NewStore returns a Store reading and writing through fsys, placing each
// project's file in the directory yielded by locator.
func NewStore(fsys afero.Fs, locator project.Locator) *Store {
	return &Store{
		fs:      fsys,
		locator: locator,
	}
}

// Path returns the key-file location for p. The file may not exist.
func (s *Store) Path(p *project.Project) (string, error) {
	dir, err := s.locator.ConfigDir(p)
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir for project %s: %w", p, err)
	}
	return filepath.Join(dir, FileName), nil
}

// Resolve returns the launch configuration of p and true, or false when the
// project has none. It never fails: an unreadable file is logged and
// treated as absent, and each missing or malformed key falls back to its
// zero value.
func (s *Store) Resolve(p *project.Project) (Config, bool) {
	path, err := s.Path(p)
	if err != nil {
		log.Warn().Err(err).Msg("treating launch config as absent")
		return Config{}, false
	}

	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, false
	} else if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to read launch config, treating as absent")
		return Config{}, false
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to parse launch config, treating as absent")
		return Config{}, false
	}

	cfg := decode(p, file)
	log.Debug().
		Str("project", p.Name).
		Str("executable", cfg.Executable()).
		Bool("terminal", cfg.Terminal()).
		Msg("resolved launch config")
	return cfg, true
}

// Save replaces the stored configuration of cfg.Project() with cfg. An
// empty cfg deletes the file instead. Other sections already present in
// the file are kept. The file is replaced atomically, so a failed Save
// leaves the previous configuration intact.
func (s *Store) Save(cfg Config) error {
	if cfg.Project() == nil {
		return errors.New("launch config has no project")
	}
	// Re-normalize in case the zero value or a hand-built Config slipped in.
	cfg = New(cfg.Project(), cfg.Executable(), cfg.Parameters(), cfg.Terminal())
	if cfg.IsEmpty() {
		return s.Clear(cfg.Project())
	}

	path, err := s.Path(cfg.Project())
	if err != nil {
		return err
	}

	file, err := s.loadForWrite(path)
	if err != nil {
		return err
	}

	sec := file.Section(sectionMain)
	sec.Key(keyExecutable).SetValue(encodeValue(cfg.Executable()))
	sec.Key(keyParameters).SetValue(encodeValue(cfg.Parameters()))
	sec.Key(keyTerminal).SetValue(strconv.FormatBool(cfg.Terminal()))

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode launch config: %w", err)
	}

	// Never replace a good file with one that reads back differently.
	reread, err := ini.LoadSources(loadOptions, buf.Bytes())
	if err != nil || !decode(cfg.Project(), reread).Equal(cfg) {
		return fmt.Errorf("failed to encode launch config: %w", ErrNotStorable)
	}

	if err := s.writeAtomic(path, buf.Bytes()); err != nil {
		return err
	}

	log.Info().
		Str("project", cfg.Project().Name).
		Str("path", path).
		Msg("saved launch config")
	return nil
}

// Clear deletes the stored configuration of p. Clearing a project without
// one is not an error.
func (s *Store) Clear(p *project.Project) error {
	path, err := s.Path(p)
	if err != nil {
		return err
	}
	err = s.fs.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove launch config: %w", err)
	}
	if err == nil {
		log.Info().Str("project", p.Name).Str("path", path).Msg("cleared launch config")
	}
	return nil
}

// Apply stores the given values for p unless they match what is already
// stored. It reports whether anything was written or removed. Empty values
// remove an existing file, even one that already holds empty values; with
// no stored configuration they do nothing.
func (s *Store) Apply(p *project.Project, executable, parameters string, terminal bool) (bool, error) {
	next := New(p, executable, parameters, terminal)

	current, ok := s.Resolve(p)
	switch {
	case !ok && next.IsEmpty():
		return false, nil
	case ok && next.IsEmpty():
		// a hand-written file may hold empty values; empty is never kept
		if err := s.Clear(p); err != nil {
			return false, err
		}
		return true, nil
	case ok && current.Equal(next):
		return false, nil
	}

	if err := s.Save(next); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) loadForWrite(path string) (*ini.File, error) {
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return ini.Empty(loadOptions), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read launch config: %w", err)
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		// The file is ours; an unparseable one is rewritten from scratch.
		log.Warn().Err(err).Str("path", path).Msg("discarding unparseable launch config")
		return ini.Empty(loadOptions), nil
	}
	return file, nil
}

func (s *Store) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+FileName+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to write launch config: %w", err)
	}

	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to replace launch config: %w", err)
	}
	return nil
}
