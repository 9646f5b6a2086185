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

// MatchData carries the per-request match mapping keyed by the original
// requested name, with fully composed artwork URLs as values.
type MatchData struct {
	Console string            `json:"console"`
	Matches map[string]string `json:"matches"`
}

// MatchStats summarizes a match request.
type MatchStats struct {
	TotalGames   int `json:"total_games"`
	TotalMatches int `json:"total_matches"`
}

// MatchResponse is the JSON payload for POST /matches.
type MatchResponse struct {
	Data  MatchData  `json:"data"`
	Stats MatchStats `json:"stats"`
}
