// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// DefaultPath is where the config file lives if -config isn't given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "driftwc", "config.toml")
}

// Load reads and parses a toml config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	conf := Config{}
	if err := toml.Unmarshal(raw, &conf); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &conf, nil
}

// LoadOrDefault tries Load and falls back to a zero config with a
// warning. Missing config files are normal on a first start.
func LoadOrDefault(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warnln("Config not loaded, using defaults")
		return &Config{}
	}
	return conf
}

// LogrusLevel resolves the configured log level. The DRIFTWC_LOG
// environment variable wins over the config file.
func (c *Config) LogrusLevel() logrus.Level {
	name := c.LogLevel
	if env := os.Getenv("DRIFTWC_LOG"); env != "" {
		name = env
	}
	if name == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		logrus.WithField("level", name).Warnln("Unknown log level, using info")
		return logrus.InfoLevel
	}
	return level
}

// Seat returns the configured seat name or the default.
func (c *Config) Seat() string {
	if c.SeatName == "" {
		return "seat0"
	}
	return c.SeatName
}
