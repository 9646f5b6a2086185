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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigCreatesDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), CfgFile)

	cfg, err := NewConfig(cfgPath, BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.APIPort())
	assert.Equal(t, "https://thumbnails.libretro.com", cfg.ThumbnailBaseURL())
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout())
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL())
	assert.False(t, cfg.DebugLogging())

	_, err = os.Stat(cfgPath)
	assert.NoError(t, err, "defaults should be written to disk")
}

func TestNewConfigLoadsExistingFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	contents := `config_schema = 1
debug_logging = true

[api]
port = 9000

[thumbnails]
fetch_timeout = 5
cache_ttl = 1
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(contents), 0o600))

	cfg, err := NewConfig(cfgPath, BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.APIPort())
	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout())
	assert.Equal(t, time.Hour, cfg.CacheTTL())
	assert.Equal(t, "https://thumbnails.libretro.com", cfg.ThumbnailBaseURL(),
		"unset values fall back to defaults")
}

func TestNewConfigRejectsUnknownSchema(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("config_schema = 99\n"), 0o600))

	_, err := NewConfig(cfgPath, BaseDefaults)
	assert.Error(t, err)
}

func TestNewConfigEnvOverridesPath(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.toml")
	t.Setenv(CfgEnv, envPath)

	cfg, err := NewConfig(filepath.Join(dir, "ignored.toml"), BaseDefaults)
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	_, err = os.Stat(envPath)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "ignored.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestSetAPIPort(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), CfgFile)

	cfg, err := NewConfig(cfgPath, BaseDefaults)
	require.NoError(t, err)

	cfg.SetAPIPort(8123)
	assert.Equal(t, 8123, cfg.APIPort())
}
