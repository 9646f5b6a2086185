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

package libretro

// consoleDirs maps the short console codes used by handheld ROM folders to
// the platform directory names of the libretro thumbnail repository. An
// empty value means the repository carries no artwork set for that code.
var consoleDirs = map[string]string{
	"PUAE":            "Commodore - Amiga",
	"AMIGA":           "Commodore - Amiga",
	"FBN":             "FBNeo - Arcade Games",
	"CPC":             "Amstrad - CPC",
	"ATARI":           "Atari - 2600",
	"FIFTYTWOHUNDRED": "Atari - 5200",
	"LYNX":            "Atari - Lynx",
	"COLECO":          "Coleco - ColecoVision",
	"C64":             "Commodore - 64",
	"COMMODORE":       "Commodore - 64",
	"DOS":             "DOS",
	"DOOM":            "DOOM",
	"EASYRPG":         "",
	"FDS":             "Family Computer Disk System",
	"GW":              "",
	"GB":              "Nintendo - Game Boy",
	"GBA":             "Nintendo - Game Boy Advance",
	"MGBA":            "Nintendo - Game Boy Advance",
	"GBC":             "Nintendo - Game Boy Color",
	"INTELLIVISION":   "Mattel - Intellivision",
	"MEGADUCK":        "",
	"MSX":             "Microsoft - MSX",
	"NEOCD":           "SNK - Neo Geo CD",
	"NGPC":            "SNK - Neo Geo Pocket Color",
	"NEOGEO":          "SNK - Neo Geo",
	"N64":             "Nintendo - Nintendo 64",
	"NDS":             "Nintendo - Nintendo DS",
	"FC":              "Nintendo - Nintendo Entertainment System",
	"ODYSSEY":         "Magnavox - Odyssey 2",
	"OPENBOR":         "",
	"P8":              "",
	"PICO":            "",
	"PKM":             "Nintendo - Pokemon Mini",
	"QUAKE":           "Quake",
	"SCUMMVM":         "ScummVM",
	"THIRTYTWOX":      "Sega - 32X",
	"DC":              "Sega - Dreamcast",
	"GG":              "Sega - Game Gear",
	"MD":              "Sega - Mega Drive - Genesis",
	"SMS":             "Sega - Master System - Mark III",
	"SATURN":          "Sega - Saturn",
	"PS":              "Sony - PlayStation",
	"PSP":             "Sony - PlayStation Portable",
	"SGB":             "",
	"SGFX":            "NEC - PC Engine SuperGrafx",
	"SFC":             "Nintendo - Super Nintendo Entertainment System",
	"SUPA":            "Nintendo - Super Nintendo Entertainment System",
	"TIC":             "TIC-80",
	"FFMPEG":          "",
	"PCE":             "NEC - PC Engine - TurboGrafx 16",
	"VIC20":           "Commodore - VIC-20",
	"VB":              "Nintendo - Virtual Boy",
	"SUPERVISION":     "Watara - Supervision",
	"WSC":             "Bandai - WonderSwan Color",
	"X68000":          "Sharp - X68000",
}

// imageDirs maps artwork categories to thumbnail repository subdirectories.
var imageDirs = map[string]string{
	"boxart": "Named_Boxarts",
	"snap":   "Named_Snaps",
	"title":  "Named_Titles",
}

// ConsoleDir resolves a console code to its thumbnail repository directory.
// Codes mapped to an empty directory are reported as unknown.
func ConsoleDir(code string) (string, bool) {
	dir, ok := consoleDirs[code]
	if !ok || dir == "" {
		return "", false
	}
	return dir, true
}

// ImageDir resolves an artwork category code to its subdirectory.
func ImageDir(imageType string) (string, bool) {
	dir, ok := imageDirs[imageType]
	return dir, ok
}
