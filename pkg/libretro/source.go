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

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/thumbmatch/thumbmatch/pkg/cache"
)

// Source serves thumbnail indexes through a TTL cache. Unknown console or
// artwork codes short-circuit before any network traffic; failed or empty
// fetches are never cached, so the next request retries.
type Source struct {
	client *Client
	store  *cache.Store[Index]
}

// NewSource wraps a listing client with a cache store.
func NewSource(client *Client, store *cache.Store[Index]) *Source {
	return &Source{client: client, store: store}
}

// Index resolves the console and artwork codes and returns the thumbnail
// index plus the escaped listing base URL to compose artifact URLs with.
// An unmapped console or image type yields a nil index and no fetch. The
// returned index is shared with other callers of the same key and must not
// be mutated.
func (s *Source) Index(ctx context.Context, console, imageType string) (Index, string, error) {
	consoleDir, ok := ConsoleDir(console)
	if !ok {
		log.Warn().Str("console", console).Msg("no mapped console found")
		return nil, "", nil
	}

	imageDir, ok := ImageDir(imageType)
	if !ok {
		log.Warn().Str("imageType", imageType).Msg("no image folder found")
		return nil, "", nil
	}

	listingURL, err := s.client.ListingURL(consoleDir, imageDir)
	if err != nil {
		return nil, "", err
	}

	index, err := s.store.GetOrFill(ctx, listingURL, func(ctx context.Context) (Index, bool, error) {
		fetched, fetchErr := s.client.FetchIndex(ctx, listingURL)
		if fetchErr != nil {
			return nil, false, fetchErr
		}
		return fetched, len(fetched) > 0, nil
	})
	if err != nil {
		return nil, listingURL, err
	}

	if len(index) == 0 {
		log.Warn().Str("console", console).Msg("no games found")
	}
	return index, listingURL, nil
}
