/*
Thumbmatch
Copyright (c) 2026 The Thumbmatch Contributors.
SPDX-License-Identifier: GPL-3.0-or-later

This file is part of Thumbmatch.

Thumbmatch is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Thumbmatch is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Thumbmatch.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"

	"github.com/thumbmatch/thumbmatch/pkg/api"
	"github.com/thumbmatch/thumbmatch/pkg/cache"
	"github.com/thumbmatch/thumbmatch/pkg/config"
	"github.com/thumbmatch/thumbmatch/pkg/helpers"
	"github.com/thumbmatch/thumbmatch/pkg/libretro"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String(
		"config",
		filepath.Join(xdg.ConfigHome, config.AppName, config.CfgFile),
		"path to config file",
	)
	port := flag.Int(
		"port",
		0,
		"override API listen port",
	)
	flag.Parse()

	logDir := filepath.Join(xdg.StateHome, config.AppName)
	if err := helpers.InitLogging(logDir, []io.Writer{os.Stderr}); err != nil {
		return fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(*cfgPath, config.BaseDefaults)
	if err != nil {
		return err
	}
	helpers.SetLogLevel(cfg.DebugLogging())

	if *port != 0 {
		cfg.SetAPIPort(*port)
	}

	client := libretro.NewClient(cfg.ThumbnailBaseURL(), cfg.FetchTimeout())
	store := cache.New[libretro.Index](nil, cfg.CacheTTL())
	source := libretro.NewSource(client, store)

	server := api.NewServer(cfg.APIPort(), source)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-sigs:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Stop(ctx)
}
