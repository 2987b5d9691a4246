// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/driftwc/config"
	"github.com/mstarongithub/driftwc/domain"
	"github.com/mstarongithub/driftwc/input"
	"github.com/mstarongithub/driftwc/persistence"
	"github.com/mstarongithub/driftwc/proc"
	"github.com/mstarongithub/driftwc/render"
	"github.com/mstarongithub/driftwc/server"
	"github.com/mstarongithub/driftwc/util/multiplexer"
)

// loopCommand is work the event loop runs on its own goroutine. All
// server state mutation goes through these or through input batches;
// nothing else may touch the server concurrently.
type loopCommand func(*server.Server)

func compositorMain(conf *config.Config) {
	if *help {
		compositorHelpMessage()
		return
	}

	srv := server.NewServerForSeat(conf.Seat())
	// Without a hardware backend all input arrives synthesized, so the
	// tracker gets one virtual source per event family
	srv.Tracker.AddDevice(input.Device{ID: 1, Name: "virtual-keyboard", Type: input.DeviceTypeKeyboard})
	srv.Tracker.AddDevice(input.Device{ID: 2, Name: "virtual-pointer", Type: input.DeviceTypePointer})
	srv.Tracker.AddDevice(input.Device{ID: 3, Name: "virtual-touch", Type: input.DeviceTypeTouch})
	if conf.Background != "" {
		if color, err := render.ParseColor(conf.Background); err == nil {
			srv.SetBackground(color)
		} else {
			logrus.WithError(err).Warnln("Bad background color in config, keeping default")
		}
	}

	statePath := conf.StatePath
	if statePath == "" {
		statePath = persistence.DefaultPath()
	}
	var apps *domain.ApplicationService
	store, err := persistence.OpenStore(statePath)
	if err != nil {
		logrus.WithError(err).Warnln("State db unavailable, application catalogue disabled")
	} else {
		defer store.Close()
		apps = domain.NewApplicationService(store.Applications(), proc.NewExecLauncher())
	}

	inputCh := make(chan []input.Event, 16)
	inputFeed := multiplexer.NewManyToOne(inputCh)
	cmdCh := make(chan loopCommand, 16)
	cmdFeed := multiplexer.NewManyToOne(cmdCh)

	events := multiplexer.NewOneToMany[server.Event]()
	go events.StartPlexer()
	defer events.CloseSender()

	switch conf.StartType {
	case config.START_REPL:
		go replRunner(&replDeps{
			inputs: inputFeed,
			cmds:   cmdFeed,
			events: events,
			apps:   apps,
		})
	case config.START_SINGLE_COMMAND:
		if conf.StartCommand == nil {
			logrus.Errorln("Start type is single command but no command is configured")
		} else {
			runStartCommand(*conf.StartCommand)
		}
	case config.START_NONE:
		logrus.Infoln("Starting without repl or start command")
	}

	// The event loop: the single control path over all server state
	for {
		select {
		case batch, ok := <-inputCh:
			if !ok {
				logrus.Infoln("Input feed closed, shutting down")
				return
			}
			srv.RunLoopIteration(batch)
		case cmd, ok := <-cmdCh:
			if !ok {
				logrus.Infoln("Command feed closed, shutting down")
				return
			}
			cmd(srv)
		}
	}
}

// runStartCommand fires the configured startup command and forgets
// about it beyond exit logging.
func runStartCommand(cmdString string) {
	parts := strings.Split(cmdString, " ")
	cmd := exec.Command(parts[0], parts[1:]...)
	if err := cmd.Start(); err != nil {
		logrus.WithError(err).WithField("command", cmdString).Errorln("Start command failed to start")
		return
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logrus.WithError(err).WithField("command", cmdString).Warningln("Start command exited badly")
		}
	}()
}

func compositorHelpMessage() {
	fmt.Println("---- Help message for driftwc ----")
	fmt.Println("\nGeneral flags:")
	fmt.Println("\t-config: Path to the config file. Default is \"config.toml\"")
	fmt.Println("\t-tool: Start as a tool instead of a compositor")
	fmt.Println("\t-help: Show this help message (or the one for tool mode if -tool is set)")
	fmt.Println("\nWithout -tool, driftwc starts its event loop. Depending on start_type")
	fmt.Println("in the config it also starts a repl (0), runs a single command (1) or")
	fmt.Println("does neither (2).")
}
