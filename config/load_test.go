package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadParsesToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
start_type = 1
start_command = "foot"
log_level = "debug"
seat_name = "seat1"
background = "#1d2021"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if conf.StartType != START_SINGLE_COMMAND {
		t.Errorf("start type = %v, expected START_SINGLE_COMMAND", conf.StartType)
	}
	if conf.StartCommand == nil || *conf.StartCommand != "foot" {
		t.Errorf("start command = %v, expected foot", conf.StartCommand)
	}
	if conf.Seat() != "seat1" {
		t.Errorf("seat = %q, expected seat1", conf.Seat())
	}
	if conf.LogrusLevel() != logrus.DebugLevel {
		t.Errorf("log level = %v, expected debug", conf.LogrusLevel())
	}
	if conf.Background != "#1d2021" {
		t.Errorf("background = %q", conf.Background)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	conf := LoadOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	if conf == nil {
		t.Fatal("expected a usable default config")
	}
	if conf.Seat() != "seat0" {
		t.Errorf("default seat = %q, expected seat0", conf.Seat())
	}
	if conf.LogrusLevel() != logrus.InfoLevel {
		t.Errorf("default log level = %v, expected info", conf.LogrusLevel())
	}
}

func TestLogrusLevelEnvOverride(t *testing.T) {
	t.Setenv("DRIFTWC_LOG", "trace")
	conf := Config{LogLevel: "error"}
	if conf.LogrusLevel() != logrus.TraceLevel {
		t.Errorf("env override ignored, got %v", conf.LogrusLevel())
	}
}
