// This file is part of Spindle.
//
// Spindle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Spindle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Spindle.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the version of the program and the vcs state it
// was built from.
package version

import "runtime/debug"

// The name to use when referring to the application.
const ApplicationName = "Spindle"

// set through the linker with the -X flag. empty means the project was not
// built through the makefile
var number string

// Version returns the version string and the vcs revision the build was
// made from. a revision suffixed with "+dirty" means the source had
// uncommitted changes at build time.
func Version() (version string, revision string) {
	version = number
	if version == "" {
		version = "unreleased"
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, ""
	}

	var modified bool
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}
	if revision == "" {
		revision = "no vcs information"
	} else if modified {
		revision += "+dirty"
	}

	return version, revision
}
