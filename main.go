// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/driftwc/config"
)

var (
	configPath *string = flag.String(
		"config",
		"config.toml",
		"Path to the config file",
	)
	toolMode *bool = flag.Bool(
		"tool",
		false,
		"Start as a tool instead of a compositor",
	)
	help *bool = flag.Bool(
		"help",
		false,
		"Show the help message",
	)
)

func main() {
	flag.Parse()

	conf := config.LoadOrDefault(*configPath)
	logrus.SetLevel(conf.LogrusLevel())

	if *toolMode {
		utilMain(conf)
	} else {
		compositorMain(conf)
	}
}
