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

package project

// Selection is one item picked in a project tree, such as a file or folder.
type Selection interface {
	// Project returns the project owning the selected item.
	Project() *Project
}

// PathSelection is a selected file or directory inside a project.
type PathSelection struct {
	Owner *Project
	Path  string
}

func (s PathSelection) Project() *Project {
	return s.Owner
}

// FromSelections returns the project of the first selection, or nil when
// nothing is selected. Later selections are ignored even when they belong to
// other projects.
func FromSelections(selections []Selection) *Project {
	if len(selections) == 0 || selections[0] == nil {
		return nil
	}
	return selections[0].Project()
}
