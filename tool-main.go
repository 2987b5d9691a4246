// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"flag"
	"fmt"

	"gitlab.com/mstarongitlab/goutils/sliceutils"

	"github.com/mstarongithub/driftwc/compositor"
	"github.com/mstarongithub/driftwc/config"
)

var (
	utilAction *string = flag.String(
		"action",
		"",
		"The action to perform. Can be one of:"+
			"\n\t- none: Do nothing"+
			"\n\t- outputs: List the default output arrangement"+
			"\n\t- seats: List the default seats"+
			"\n\t- geometry <output>: Show one output's geometry",
	)
	outputSelection *string = flag.String(
		"output",
		"",
		"Output to perform the action on. Required for some actions",
	)
)

func utilMain(_ *config.Config) {
	if *help {
		utilHelpMessage()
		return
	}

	// A fresh state carries the seeded default arrangement
	state := compositor.NewState()

	switch *utilAction {
	case "outputs":
		utilListOutputs(state)
	case "seats":
		utilListSeats(state)
	case "geometry":
		if *outputSelection == "" {
			fmt.Println("Output has to be specified")
			return
		}
		utilShowGeometry(state, *outputSelection)
	}
}

func utilHelpMessage() {
	fmt.Println("---- Help message for driftwc in tool mode ----")
	fmt.Println("\nIn tool mode, driftwc offers various tools for figuring out configurations and similar")
	fmt.Println("\nGeneral flags:")
	fmt.Println("\t-config: Path to the config file. Default is \"config.toml\"")
	fmt.Println("\t-tool: Start as a tool instead of a compositor")
	fmt.Println("\t-help: Show this help message (or the one for compositor mode if -tool is not set)")
	fmt.Println("\nTool flags:")
	fmt.Println("\t-action: The action to perform. Can be one of:")
	fmt.Println("\t\t- outputs: List the default output arrangement")
	fmt.Println("\t\t- seats: List the default seats")
	fmt.Println("\t\t- geometry: Show one output's geometry. Use with -output")
	fmt.Println("\t-output: Output to perform the action on. Required for -action geometry")
}

func utilListOutputs(state *compositor.State) {
	for i, output := range state.Outputs {
		if output.Primary {
			fmt.Printf("Output %v: %s (primary)\n", i, output.Name)
		} else {
			fmt.Printf("Output %v: %s\n", i, output.Name)
		}
	}
}

func utilListSeats(state *compositor.State) {
	for i, seat := range state.Seats {
		fmt.Printf("Seat %v: %s\n", i, seat.Name)
	}
}

func utilShowGeometry(state *compositor.State, outputName string) {
	filtered := sliceutils.Filter(state.Outputs, func(output compositor.Output) bool {
		return output.Name == outputName
	})
	if len(filtered) == 0 {
		fmt.Printf("Output %s not found\n", outputName)
		return
	}
	output := filtered[0]
	fmt.Printf("Geometry for output %s:\n", outputName)
	fmt.Printf("\t- %dx%d at (%d,%d)\n", output.Width, output.Height, output.X, output.Y)
}
