// Thumbmatch
// Copyright (c) 2026 The Thumbmatch Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Thumbmatch.
//
// Thumbmatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Thumbmatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Thumbmatch.  If not, see <http://www.gnu.org/licenses/>.

// Package naming normalizes ROM filenames into the canonical display names
// used by the libretro thumbnail repository.
package naming

import (
	"regexp"
	"strings"
)

var (
	extensionRe   = regexp.MustCompile(`\.\w+$`)
	parentheticRe = regexp.MustCompile(`\s*\([^)]*\)`)
	bracketedRe   = regexp.MustCompile(`\s*\[[^\]]*\]`)
)

// commonRenames maps spellings found in ROM sets to the ones used by the
// thumbnail repository. Entries are applied in order as literal substring
// replacements, so later entries see the output of earlier ones.
var commonRenames = [][2]string{
	{"Megaman", "Mega Man"},
}

// Scrub strips a trailing extension, any parenthesized or bracketed
// annotation groups (region, language, dump flags) and applies the common
// rename table, returning the trimmed result. Scrub is pure and never fails;
// an unrecognizable input comes back unchanged apart from whitespace.
func Scrub(name string) string {
	name = extensionRe.ReplaceAllString(name, "")
	name = parentheticRe.ReplaceAllString(name, "")
	name = bracketedRe.ReplaceAllString(name, "")

	for _, rename := range commonRenames {
		name = strings.ReplaceAll(name, rename[0], rename[1])
	}

	return strings.TrimSpace(name)
}
