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
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thumbmatch/thumbmatch/pkg/cache"
	"github.com/thumbmatch/thumbmatch/pkg/libretro"
)

const testListing = `<html><body><pre>
<a href="../">../</a>
<a href="Super%20Mario%20World%20%28USA%29.png">Super Mario World (USA).png</a>
<a href="The%20Legend%20of%20Zelda%20%28USA%29.png">The Legend of Zelda (USA).png</a>
</pre></body></html>`

// newTestRouter wires a router against a fake thumbnail repository and
// returns it along with a counter of upstream requests.
func newTestRouter(t *testing.T) (http.Handler, *atomic.Int32) {
	t.Helper()

	var requests atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(testListing))
	}))
	t.Cleanup(upstream.Close)

	client := libretro.NewClient(upstream.URL, 0)
	store := cache.New[libretro.Index](clockwork.NewFakeClock(), 24*time.Hour)
	source := libretro.NewSource(client, store)
	return NewRouter(source), &requests
}

func postMatches(t *testing.T, router http.Handler, path, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleIndex(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, map[string]string{"Hello": "World"}, payload)
}

func TestHandleMatchesExact(t *testing.T) {
	t.Parallel()

	router, requests := newTestRouter(t)

	rec := postMatches(t, router, "/matches/SFC/boxart", "Super Mario World.zip", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "SFC", resp.Data.Console)
	require.Contains(t, resp.Data.Matches, "Super Mario World.zip")
	matchedURL := resp.Data.Matches["Super Mario World.zip"]
	assert.True(t, strings.HasSuffix(matchedURL, "/Super%20Mario%20World%20%28USA%29.png"),
		"unexpected url: %s", matchedURL)
	assert.Contains(t, matchedURL,
		"/Nintendo%20-%20Super%20Nintendo%20Entertainment%20System/Named_Boxarts/")

	assert.Equal(t, 1, resp.Stats.TotalGames)
	assert.Equal(t, 1, resp.Stats.TotalMatches)
	assert.Equal(t, int32(1), requests.Load())
}

func TestHandleMatchesFuzzyAndUnmatched(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	body := "Super Maria World.zip\nChrono Trigger.sfc"
	rec := postMatches(t, router, "/matches/SFC/boxart", body, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Contains(t, resp.Data.Matches, "Super Maria World.zip",
		"typo should still match via the fuzzy pass")
	assert.NotContains(t, resp.Data.Matches, "Chrono Trigger.sfc")
	assert.Equal(t, 2, resp.Stats.TotalGames)
	assert.Equal(t, 1, resp.Stats.TotalMatches)
}

func TestHandleMatchesFiltersInput(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	body := "Super Mario World.zip\n\n.hidden\nneogeo.zip"
	rec := postMatches(t, router, "/matches/SFC/boxart", body, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Stats.TotalGames)
}

func TestHandleMatchesUnknownConsole(t *testing.T) {
	t.Parallel()

	router, requests := newTestRouter(t)

	rec := postMatches(t, router, "/matches/NOPE/boxart", "Super Mario World.zip", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Empty(t, resp.Data.Matches)
	assert.Equal(t, 0, resp.Stats.TotalGames)
	assert.Equal(t, 0, resp.Stats.TotalMatches)
	assert.Equal(t, int32(0), requests.Load(), "unknown console must not fetch")
}

func TestHandleMatchesUnknownImageType(t *testing.T) {
	t.Parallel()

	router, requests := newTestRouter(t)

	rec := postMatches(t, router, "/matches/SFC/fanart", "Super Mario World.zip", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Matches)
	assert.Equal(t, int32(0), requests.Load())
}

func TestHandleMatchesPlainText(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	body := "Super Mario World.zip\nThe Legend of Zelda.nes"
	rec := postMatches(t, router, "/matches/SFC/boxart", body, "text/plain")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	lines := strings.Split(rec.Body.String(), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		parts := strings.Split(line, "\t")
		require.Len(t, parts, 2, "line %q", line)
		assert.True(t, strings.HasSuffix(parts[1], ".png"))
	}
}

func TestHandleMatchesPrettyPrintsJSON(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := postMatches(t, router, "/matches/SFC/boxart", "Super Mario World.zip", "")
	assert.Contains(t, rec.Body.String(), "\n    \"data\"")
}
