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

package api

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/thumbmatch/thumbmatch/pkg/libretro"
	"github.com/thumbmatch/thumbmatch/pkg/matcher"
)

func handleIndex(w http.ResponseWriter, _ *http.Request) {
	writePrettyJSON(w, map[string]string{"Hello": "World"})
}

// handleMatches resolves the request body's game list against the thumbnail
// index for the console and image type in the URL. Any upstream failure
// degrades to an empty result; the request itself always completes.
func handleMatches(source *libretro.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		console := chi.URLParam(r, "console")
		imageType := chi.URLParam(r, "imageType")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "error reading request body", http.StatusBadRequest)
			return
		}

		games := matcher.FilterGameList(string(body))

		index, baseURL, err := source.Index(r.Context(), console, imageType)
		if err != nil {
			log.Error().
				Err(err).
				Str("console", console).
				Str("imageType", imageType).
				Msg("error fetching thumbnail index")
			index = nil
		}

		matches := make(map[string]string)
		if len(index) == 0 {
			// Unknown console, unknown image type or a failed fetch: the
			// stats report zero considered games as well.
			games = nil
		} else {
			for game, raw := range matcher.Match(games, index) {
				matches[game] = baseURL + raw
			}
		}

		if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
			writePlainText(w, matches)
			return
		}

		writePrettyJSON(w, MatchResponse{
			Data: MatchData{
				Console: console,
				Matches: matches,
			},
			Stats: MatchStats{
				TotalGames:   len(games),
				TotalMatches: len(matches),
			},
		})
	}
}

// writePlainText renders matches as tab-separated name/url lines, sorted by
// name so output is stable.
func writePlainText(w http.ResponseWriter, matches map[string]string) {
	names := make([]string, 0, len(matches))
	for name := range matches {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+"\t"+matches[name])
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(strings.Join(lines, "\n"))); err != nil {
		log.Error().Err(err).Msg("error writing response")
	}
}

func writePrettyJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		log.Error().Err(err).Msg("error marshalling response")
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Msg("error writing response")
	}
}
