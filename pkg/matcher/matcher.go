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

// Package matcher resolves requested game names against a scraped thumbnail
// index using an exact pass followed by a cascade of fuzzy scorers.
package matcher

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/thumbmatch/thumbmatch/pkg/naming"
)

// MinMatchScore is the acceptance threshold for fuzzy matches.
const MinMatchScore = 90

// noiseEntry is a filename that appears in arcade ROM sets but is not a game.
const noiseEntry = "neogeo.zip"

// FilterGameList splits a newline-separated request body into game names,
// dropping blank lines, hidden files and known non-game entries. Order is
// preserved.
func FilterGameList(body string) []string {
	var games []string
	for _, line := range strings.Split(body, "\n") {
		game := strings.TrimSpace(line)
		if game == "" {
			continue
		}
		if strings.HasPrefix(game, ".") {
			continue
		}
		if game == noiseEntry {
			continue
		}
		games = append(games, game)
	}
	return games
}

// Match resolves each requested game name to a raw thumbnail filename from
// index. The returned map is keyed by the original requested name; values are
// raw filenames as listed in the index, not full URLs.
//
// The exact pass consumes index entries so no two names claim the same file.
// The fuzzy pass intentionally does not consume entries: one thumbnail may
// serve as the fuzzy match for several requested names. Match copies the
// index before mutating it, so a cached index shared between requests is
// never modified.
func Match(games []string, index map[string]string) map[string]string {
	matches := make(map[string]string)
	if len(index) == 0 {
		return matches
	}

	working := make(map[string]string, len(index))
	for k, v := range index {
		working[k] = v
	}

	remaining := make([]string, 0, len(games))
	for _, game := range games {
		scrubbed := naming.Scrub(game)
		if raw, ok := working[scrubbed]; ok {
			matches[game] = raw
			delete(working, scrubbed)
			continue
		}
		remaining = append(remaining, game)
	}

	if len(remaining) == 0 || len(working) == 0 {
		return matches
	}

	// Candidate order is fixed up front so scoring is deterministic.
	candidates := make([]string, 0, len(working))
	for k := range working {
		candidates = append(candidates, k)
	}
	sort.Strings(candidates)

	scorers := Scorers()
	for _, game := range remaining {
		scrubbed := naming.Scrub(game)

		matched := false
		for _, scorer := range scorers {
			best, ok := ExtractOne(scrubbed, candidates, scorer.Score)
			if !ok {
				break
			}
			if best.Score < MinMatchScore {
				log.Warn().
					Str("game", game).
					Str("scrubbed", scrubbed).
					Str("scorer", scorer.Name).
					Str("bestMatch", best.Candidate).
					Int("score", best.Score).
					Msg("score too low")
				continue
			}

			matches[game] = working[best.Candidate]
			matched = true
			break
		}

		if !matched {
			log.Warn().
				Str("game", game).
				Str("scrubbed", scrubbed).
				Msg("no match found")
		}
	}

	return matches
}
