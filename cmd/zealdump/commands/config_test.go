package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/zealdump/internal/uart"
)

func TestApplyFileConfigOverlaysDefinedKeys(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "zealdump.toml")
	content := `
device = "/dev/ttyUSB1"
baud = 115200
read_timeout = "750ms"
verbose = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts := defaultOptions()
	if err := applyFileConfig(path, &opts); err != nil {
		t.Fatalf("apply config: %v", err)
	}
	if opts.Device != "/dev/ttyUSB1" {
		t.Fatalf("unexpected device: %q", opts.Device)
	}
	if opts.Baud != 115200 {
		t.Fatalf("unexpected baud: %d", opts.Baud)
	}
	if opts.Timeout != 750*time.Millisecond {
		t.Fatalf("unexpected timeout: %v", opts.Timeout)
	}
	if !opts.Verbose {
		t.Fatalf("expected verbose enabled")
	}
}

func TestApplyFileConfigKeepsDefaultsForAbsentKeys(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "zealdump.toml")
	if err := os.WriteFile(path, []byte(`device = "/dev/ttyACM0"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts := defaultOptions()
	if err := applyFileConfig(path, &opts); err != nil {
		t.Fatalf("apply config: %v", err)
	}
	if opts.Device != "/dev/ttyACM0" {
		t.Fatalf("unexpected device: %q", opts.Device)
	}
	if opts.Baud != uart.DefaultBaud {
		t.Fatalf("unexpected baud: %d", opts.Baud)
	}
	if opts.Timeout != uart.DefaultReadTimeout {
		t.Fatalf("unexpected timeout: %v", opts.Timeout)
	}
	if opts.Verbose {
		t.Fatalf("expected verbose disabled")
	}
}

func TestApplyFileConfigIgnoresBlankDevice(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "zealdump.toml")
	if err := os.WriteFile(path, []byte(`device = "   "`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts := defaultOptions()
	opts.Device = "/dev/ttyUSB0"
	if err := applyFileConfig(path, &opts); err != nil {
		t.Fatalf("apply config: %v", err)
	}
	if opts.Device != "/dev/ttyUSB0" {
		t.Fatalf("blank device should not overwrite, got %q", opts.Device)
	}
}

func TestApplyFileConfigRejectsBadTimeout(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "zealdump.toml")
	if err := os.WriteFile(path, []byte(`read_timeout = "soon"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	opts := defaultOptions()
	if err := applyFileConfig(path, &opts); err == nil {
		t.Fatalf("expected parse error for bad read_timeout")
	}
}
