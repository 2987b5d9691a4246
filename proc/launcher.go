// Copyright (c) 2024 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package proc starts application processes on behalf of the session.
package proc

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/driftwc/domain"
)

// ExecLauncher starts applications as detached child processes.
type ExecLauncher struct{}

func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

// Launch spawns the application's executable and returns its pid. The
// child is not waited on; a reaper goroutine collects it so it doesn't
// linger as a zombie.
func (l *ExecLauncher) Launch(ctx context.Context, app *domain.Application) (int, error) {
	if app.WorkingDirectory != "" {
		info, err := os.Stat(app.WorkingDirectory)
		if err != nil {
			return 0, fmt.Errorf("working directory %q: %w", app.WorkingDirectory, err)
		}
		if !info.IsDir() {
			return 0, fmt.Errorf("working directory %q is not a directory", app.WorkingDirectory)
		}
	}

	cmd := exec.CommandContext(ctx, app.ExecutablePath, app.Arguments...)
	cmd.Dir = app.WorkingDirectory
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("starting %q: %w", app.ExecutablePath, err)
	}
	pid := cmd.Process.Pid
	logrus.WithFields(logrus.Fields{
		"executable": app.ExecutablePath,
		"pid":        pid,
	}).Debugln("Spawned process")

	go func() {
		if err := cmd.Wait(); err != nil {
			logrus.WithError(err).WithField("pid", pid).Debugln("Process exited with error")
		}
	}()

	return pid, nil
}
