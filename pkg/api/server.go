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

// Package api exposes the match pipeline over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/thumbmatch/thumbmatch/pkg/libretro"
)

const requestTimeout = 30 * time.Second

// Server hosts the match API.
type Server struct {
	http *http.Server
}

// NewServer builds a Server listening on port, backed by the given thumbnail
// source.
func NewServer(port int, source *libretro.Source) *Server {
	return &Server{
		http: &http.Server{
			Addr:              ":" + strconv.Itoa(port),
			Handler:           NewRouter(source),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewRouter assembles the chi router. Exposed separately so tests can drive
// the handlers without a listening socket.
func NewRouter(source *libretro.Source) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{},
	}))

	r.Get("/", handleIndex)
	r.Post("/matches/{console}/{imageType}", handleMatches(source))

	return r
}

// Start runs the server until Stop is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.http.Addr).Msg("starting http server")
	err := s.http.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error starting http server: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}
	return nil
}
