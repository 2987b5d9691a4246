// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package config

type StartType int

const (
	// Tells driftwc to start a repl in parallel for interacting with it
	START_REPL = StartType(iota)
	// Tells driftwc to execute a specific command on startup
	START_SINGLE_COMMAND
	// Tells driftwc to start without any specific targets
	START_NONE
)

type Config struct {
	StartType StartType `envconfig:"START_TYPE,omitempty" toml:"start_type,omitempty"`
	// What command to execute on start. Only matters if StartType is set to START_SINGLE_COMMAND
	StartCommand *string `envconfig:"START_COMMAND,omitempty" toml:"start_command,omitempty"`
	// Log level name understood by logrus ("debug", "info", ...). Empty means info
	LogLevel string `envconfig:"LOG_LEVEL,omitempty" toml:"log_level,omitempty"`
	// Name of the default seat. Empty means "seat0"
	SeatName string `envconfig:"SEAT_NAME,omitempty" toml:"seat_name,omitempty"`
	// Desktop background color as "#RRGGBB" or "#RRGGBBAA". Empty means a dark gray
	Background string `envconfig:"BACKGROUND,omitempty" toml:"background,omitempty"`
	// Where the state db lives. Empty means the xdg data dir
	StatePath string `envconfig:"STATE_PATH,omitempty" toml:"state_path,omitempty"`
}
