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

// Package libretro fetches directory listings from the libretro thumbnail
// repository and turns them into name-to-filename indexes.
package libretro

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/thumbmatch/thumbmatch/pkg/naming"
	"github.com/thumbmatch/thumbmatch/pkg/shared/httpclient"
)

// DefaultBaseURL is the public thumbnail repository.
const DefaultBaseURL = "https://thumbnails.libretro.com"

// thumbnailExt is the only file type the repository serves for artwork.
const thumbnailExt = ".png"

// Index maps a scrubbed display name to the raw filename listed by the
// repository. If the listing has two files scrubbing to the same name, the
// later one wins.
type Index map[string]string

// Client fetches thumbnail directory listings.
type Client struct {
	http    *httpclient.Client
	baseURL string
}

// NewClient creates a listing client. An empty baseURL uses the public
// repository; a zero timeout uses the client default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpclient.NewClientWithTimeout(timeout),
		baseURL: baseURL,
	}
}

// ListingURL builds the escaped directory listing URL for a console
// directory and image directory pair. The result always ends in a slash so
// raw filenames can be appended directly.
func (c *Client) ListingURL(consoleDir, imageDir string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}
	u.Path = "/" + consoleDir + "/" + imageDir + "/"
	return u.String(), nil
}

// FetchIndex retrieves and parses the directory listing at listingURL.
// A non-200 response or an unreadable body degrades to an empty index with a
// warning; only transport failures are returned as errors.
func (c *Client) FetchIndex(ctx context.Context, listingURL string) (Index, error) {
	log.Info().Str("url", listingURL).Msg("fetching thumbnail listing")

	resp, err := c.http.Get(ctx, listingURL)
	if err != nil {
		return nil, fmt.Errorf("fetching listing: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("url", listingURL).
			Msg("listing request failed")
		return Index{}, nil
	}

	index, err := ParseListing(resp.Body)
	if err != nil {
		log.Warn().Err(err).Str("url", listingURL).Msg("unparsable listing")
		return Index{}, nil
	}
	return index, nil
}

// ParseListing reads a directory-listing HTML document and indexes every
// anchor whose href ends in the thumbnail extension. The anchor's display
// text is scrubbed to form the key; the href is kept raw as the value.
func ParseListing(r io.Reader) (Index, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing listing html: %w", err)
	}

	index := make(Index)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := attrValue(n, "href")
			if strings.HasSuffix(href, thumbnailExt) {
				index[naming.Scrub(nodeText(n))] = href
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return index, nil
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
