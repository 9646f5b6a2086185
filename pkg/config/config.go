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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	SchemaVersion = 1
	CfgEnv        = "THUMBMATCH_CFG"
	CfgFile       = "config.toml"
	LogFile       = "thumbmatch.log"
	AppName       = "thumbmatch"
)

type Values struct {
	API          API        `toml:"api,omitempty"`
	Thumbnails   Thumbnails `toml:"thumbnails,omitempty"`
	ConfigSchema int        `toml:"config_schema"`
	DebugLogging bool       `toml:"debug_logging"`
}

type API struct {
	Port int `toml:"port"`
}

type Thumbnails struct {
	BaseURL          string `toml:"base_url,omitempty"`
	FetchTimeoutSecs int    `toml:"fetch_timeout"`
	CacheTTLHours    int    `toml:"cache_ttl"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	API: API{
		Port: 8000,
	},
	Thumbnails: Thumbnails{
		BaseURL:          "https://thumbnails.libretro.com",
		FetchTimeoutSecs: 10,
		CacheTTLHours:    24,
	},
}

// Instance holds the loaded configuration behind a lock so accessors are
// safe from any goroutine.
type Instance struct {
	cfgPath string
	vals    Values
	mu      sync.RWMutex
}

// NewConfig loads the config file at cfgPath, creating it from defaults if
// it does not exist. The THUMBMATCH_CFG environment variable overrides
// cfgPath when set.
func NewConfig(cfgPath string, defaults Values) (*Instance, error) {
	if env, ok := os.LookupEnv(CfgEnv); ok && env != "" {
		cfgPath = env
	}

	cfg := &Instance{
		cfgPath: cfgPath,
		vals:    defaults,
	}

	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// Load reads the config file into the instance. A missing file is written
// out with the current (default) values instead.
func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	if _, err := os.Stat(c.cfgPath); errors.Is(err, os.ErrNotExist) {
		return c.saveLocked()
	}

	data, err := os.ReadFile(c.cfgPath) // #nosec G304 - path comes from operator flags
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var newVals Values
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		return fmt.Errorf("unsupported config schema: %d", newVals.ConfigSchema)
	}

	c.vals = merged(c.vals, newVals)
	return nil
}

// Save writes the current values back to disk.
func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked()
}

func (c *Instance) saveLocked() error {
	data, err := toml.Marshal(c.vals)
	if err != nil {
		return fmt.Errorf("error marshalling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.cfgPath), 0o750); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// merged overlays loaded values on the defaults, keeping defaults for
// anything the file leaves unset.
func merged(defaults, loaded Values) Values {
	vals := loaded
	if vals.API.Port == 0 {
		vals.API.Port = defaults.API.Port
	}
	if vals.Thumbnails.BaseURL == "" {
		vals.Thumbnails.BaseURL = defaults.Thumbnails.BaseURL
	}
	if vals.Thumbnails.FetchTimeoutSecs == 0 {
		vals.Thumbnails.FetchTimeoutSecs = defaults.Thumbnails.FetchTimeoutSecs
	}
	if vals.Thumbnails.CacheTTLHours == 0 {
		vals.Thumbnails.CacheTTLHours = defaults.Thumbnails.CacheTTLHours
	}
	return vals
}

func (c *Instance) APIPort() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.API.Port
}

// SetAPIPort overrides the listen port, typically from a CLI flag.
func (c *Instance) SetAPIPort(port int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.API.Port = port
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) ThumbnailBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Thumbnails.BaseURL
}

func (c *Instance) FetchTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.vals.Thumbnails.FetchTimeoutSecs) * time.Second
}

func (c *Instance) CacheTTL() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.vals.Thumbnails.CacheTTLHours) * time.Hour
}
