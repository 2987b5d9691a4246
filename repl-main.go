// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/driftwc/domain"
	"github.com/mstarongithub/driftwc/input"
	"github.com/mstarongithub/driftwc/repl"
	"github.com/mstarongithub/driftwc/server"
	"github.com/mstarongithub/driftwc/util"
	"github.com/mstarongithub/driftwc/util/multiplexer"
	"github.com/mstarongithub/driftwc/util/wrappers"
)

const (
	keyCodeCopy  = 67
	keyCodePaste = 86
)

type replDeps struct {
	inputs *multiplexer.ManyToOne[[]input.Event]
	cmds   *multiplexer.ManyToOne[loopCommand]
	events *multiplexer.OneToMany[server.Event]
	apps   *domain.ApplicationService

	clientID uint32
}

// do runs fn on the event loop goroutine and waits for its reply.
func (d *replDeps) do(fn func(*server.Server) string) (string, error) {
	reply := make(chan string, 1)
	err := d.cmds.Send(func(s *server.Server) {
		reply <- fn(s)
	})
	if err != nil {
		return "", err
	}
	return <-reply, nil
}

func replRunner(deps *replDeps) {
	// Register this repl as a client on the loop before taking commands
	if _, err := deps.do(func(s *server.Server) string {
		deps.clientID = s.AddClient()
		return ""
	}); err != nil {
		logrus.WithError(err).Errorln("Repl could not register as a client")
		return
	}

	// Log server events as they fan out
	if eventCh, err := deps.events.MakeReceiver("repl"); err == nil {
		go func() {
			for ev := range eventCh {
				logrus.WithField("event", fmt.Sprintf("%+v", ev)).Debugln("Server event")
			}
		}()
	}

	// Wrappers keep stdin and stdout themselves open when the repl
	// closes its streams
	commandRepl := repl.NewRepl(wrappers.NewReaderWrapper(os.Stdin), wrappers.NewWriterWrapper(os.Stdout))
	logrus.Debugln("Starting repl")
	_ = commandRepl.Run(deps.handleLine)
}

func (d *replDeps) handleLine(line string, r *repl.Repl) (string, error) {
	switch {
	case line == "quit":
		d.inputs.Close()
		d.cmds.Close()
		return "Quitting", errors.New("normal stop")

	case strings.HasPrefix(line, "run "):
		return runShellCommand(strings.TrimPrefix(line, "run "), r), nil

	case strings.HasPrefix(line, "launch "):
		return d.launchApplication(strings.TrimPrefix(line, "launch ")), nil

	case strings.HasPrefix(line, "open "):
		title := strings.TrimPrefix(line, "open ")
		return d.request(server.CreateWindowRequest{
			ClientID:      d.clientID,
			Title:         title,
			InitialWidth:  800,
			InitialHeight: 600,
		})

	case strings.HasPrefix(line, "copy "):
		return d.request(server.CopyTextRequest{
			ClientID: d.clientID,
			Text:     strings.TrimPrefix(line, "copy "),
		})

	case line == "paste":
		return d.request(server.PasteTextRequest{ClientID: d.clientID})

	case line == "tile":
		return d.do(func(s *server.Server) string {
			s.Compositor.TileWindows()
			return "Tiled"
		})

	case line == "focus-next":
		return d.do(func(s *server.Server) string {
			if s.Compositor.FocusNextWindow(s.SeatName()) {
				return "Focus advanced"
			}
			return "No seat to cycle focus on"
		})

	case line == "windows":
		return d.do(describeWindows)

	case strings.HasPrefix(line, "shortcut "):
		return d.sendShortcut(strings.TrimPrefix(line, "shortcut "))

	case strings.HasPrefix(line, "motion "):
		return d.sendMotion(strings.TrimPrefix(line, "motion "))

	case strings.HasPrefix(line, "inspect "):
		return d.inspect(strings.TrimPrefix(line, "inspect "))

	default:
		return "Unknown command", nil
	}
}

// runShellCommand keeps the child running detached while its output
// lands on the repl stream.
func runShellCommand(cmdString string, r *repl.Repl) string {
	parts := strings.Split(cmdString, " ")
	// Safe for a bare "run ": exec of the empty string just fails
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdout = r.Output
	cmd.Stderr = r.Output
	go func(cmd *exec.Cmd, cmdString string) {
		err := cmd.Start()
		if err != nil {
			logrus.WithError(err).WithField("command", cmdString).Errorln("Command failed to start")
			return
		}
		err = cmd.Wait()
		if exiterr, ok := err.(*exec.ExitError); ok {
			logrus.WithError(err).WithFields(logrus.Fields{
				"exit-code": exiterr.ExitCode(),
				"command":   cmdString,
			}).Warningln("Bad command completion")
		}
	}(cmd, cmdString)
	return "Running " + parts[0]
}

func (d *replDeps) launchApplication(name string) string {
	if d.apps == nil {
		return "Application catalogue is not available"
	}
	pid, err := d.apps.LaunchByName(context.Background(), name)
	if err != nil {
		return "Launch failed: " + err.Error()
	}
	return fmt.Sprintf("Launched %s (pid %d)", name, pid)
}

// request runs a client request on the loop and renders the resulting
// event for the prompt.
func (d *replDeps) request(req server.Request) (string, error) {
	return d.do(func(s *server.Server) string {
		ev := s.ProcessClientRequest(req)
		if ev == nil {
			return "Request had no effect"
		}
		// Forward to whoever listens on the event fan-out too
		d.events.GetSender() <- ev
		switch e := ev.(type) {
		case server.WindowCreatedEvent:
			return fmt.Sprintf("Window %d created at (%d,%d) size %dx%d", e.WindowID, e.X, e.Y, e.Width, e.Height)
		case server.TextCopiedEvent:
			return "Copied"
		case server.PasteTextResponseEvent:
			if !e.Available {
				return "Clipboard is empty"
			}
			return "Clipboard: " + e.Text
		default:
			return fmt.Sprintf("%+v", ev)
		}
	})
}

func (d *replDeps) sendShortcut(which string) (string, error) {
	var code uint32
	switch which {
	case "copy":
		code = keyCodeCopy
	case "paste":
		code = keyCodePaste
	default:
		return "Unknown shortcut, try copy or paste", nil
	}
	err := d.inputs.Send([]input.Event{input.KeyboardEvent{
		Code:      code,
		State:     input.KeyStatePressed,
		Modifiers: input.Modifiers{Ctrl: true},
	}})
	if err != nil {
		return "", err
	}
	return "Shortcut sent", nil
}

func (d *replDeps) sendMotion(args string) (string, error) {
	var dxStr, dyStr string
	util.Unpack(strings.SplitN(args, " ", 2), &dxStr, &dyStr)
	dx, errX := strconv.ParseFloat(dxStr, 64)
	dy, errY := strconv.ParseFloat(dyStr, 64)
	if errX != nil || errY != nil {
		return "Usage: motion <dx> <dy>", nil
	}
	err := d.inputs.Send([]input.Event{input.PointerMotionEvent{DX: dx, DY: dy}})
	if err != nil {
		return "", err
	}
	return "Motion sent", nil
}

func (d *replDeps) inspect(rawCmdString string) (string, error) {
	var target, mod string
	util.Unpack(strings.SplitN(rawCmdString, " ", 2), &target, &mod)
	logrus.WithFields(logrus.Fields{
		"cmd": target,
		"mod": mod,
		"raw": rawCmdString,
	}).Debugln("Parsed inspect command")
	switch target {
	case "seat":
		return d.do(func(s *server.Server) string {
			seat := s.Compositor.FindSeat(s.SeatName())
			if seat == nil {
				return "No default seat"
			}
			if id, ok := seat.FocusTarget(); ok {
				return fmt.Sprintf("Seat %s focuses window %d", seat.Name, id)
			}
			return fmt.Sprintf("Seat %s has no focus", seat.Name)
		})
	case "pointer":
		return d.do(func(s *server.Server) string {
			return fmt.Sprintf("Pointer: Location (%f:%f)",
				s.Tracker.State.PointerX,
				s.Tracker.State.PointerY)
		})
	case "clipboard":
		return d.do(func(s *server.Server) string {
			if data, ok := s.Clipboard.Get(); ok {
				return fmt.Sprintf("Clipboard holds %d bytes", len(data))
			}
			return "Clipboard is empty"
		})
	case "outputs":
		return d.do(describeOutputs)
	case "windows":
		return d.do(describeWindows)
	case "devices":
		return d.do(func(s *server.Server) string {
			devices := s.Tracker.Devices()
			if len(devices) == 0 {
				return "No input devices"
			}
			parts := make([]string, 0, len(devices))
			for _, dev := range devices {
				parts = append(parts, dev.String())
			}
			return strings.Join(parts, "\n")
		})
	default:
		return "Unknown inspect target, try seat, pointer, clipboard, outputs, windows or devices", nil
	}
}

func describeOutputs(s *server.Server) string {
	var sb strings.Builder
	for i, output := range s.Compositor.Outputs {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Output %d: %s %dx%d at (%d,%d)", output.ID, output.Name, output.Width, output.Height, output.X, output.Y)
		if output.Primary {
			sb.WriteString(" (primary)")
		}
	}
	if sb.Len() == 0 {
		return "No outputs"
	}
	return sb.String()
}

func describeWindows(s *server.Server) string {
	var sb strings.Builder
	for i, window := range s.Compositor.Windows {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Window %d: %q %dx%d at (%d,%d) %s", window.ID, window.Title, window.Width, window.Height, window.X, window.Y, window.State)
		if !window.Mapped {
			sb.WriteString(" (unmapped)")
		}
		if window.Focused {
			sb.WriteString(" (focused)")
		}
	}
	if sb.Len() == 0 {
		return "No windows"
	}
	return sb.String()
}
