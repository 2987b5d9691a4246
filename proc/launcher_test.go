package proc

import (
	"context"
	"testing"

	"github.com/mstarongithub/driftwc/domain"
)

func TestLaunchRejectsMissingWorkingDirectory(t *testing.T) {
	launcher := NewExecLauncher()
	app := domain.NewApplication("true", "/bin/true", domain.ApplicationKindCli)
	app.WorkingDirectory = "/definitely/does/not/exist"

	if _, err := launcher.Launch(context.Background(), &app); err == nil {
		t.Error("expected an error for a missing working directory")
	}
}

func TestLaunchRejectsMissingExecutable(t *testing.T) {
	launcher := NewExecLauncher()
	app := domain.NewApplication("ghost", "/no/such/binary", domain.ApplicationKindCli)

	if _, err := launcher.Launch(context.Background(), &app); err == nil {
		t.Error("expected an error for a missing executable")
	}
}

func TestLaunchReturnsPid(t *testing.T) {
	launcher := NewExecLauncher()
	app := domain.NewApplication("true", "/bin/true", domain.ApplicationKindCli)
	app.WorkingDirectory = t.TempDir()

	pid, err := launcher.Launch(context.Background(), &app)
	if err != nil {
		t.Fatalf("launch failed: %v", err)
	}
	if pid <= 0 {
		t.Errorf("expected a real pid, got %d", pid)
	}
}
