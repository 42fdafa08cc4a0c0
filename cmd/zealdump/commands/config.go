package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/zealdump/internal/uart"
)

// options is the resolved dump configuration: built-in defaults, overlaid by
// the config file, overlaid by explicit flags.
type options struct {
	Device  string
	Baud    int
	Timeout time.Duration
	Verbose bool
}

func defaultOptions() options {
	return options{
		Baud:    uart.DefaultBaud,
		Timeout: uart.DefaultReadTimeout,
	}
}

type fileConfig struct {
	Device      string `toml:"device"`
	Baud        int    `toml:"baud"`
	ReadTimeout string `toml:"read_timeout"`
	Verbose     bool   `toml:"verbose"`
}

// applyFileConfig overlays the keys defined in the TOML file at path onto
// opts, leaving everything else untouched.
func applyFileConfig(path string, opts *options) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("device") {
		if dev := strings.TrimSpace(raw.Device); dev != "" {
			opts.Device = dev
		}
	}

	if meta.IsDefined("baud") {
		opts.Baud = raw.Baud
	}

	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return fmt.Errorf("parse read_timeout: %w", err)
		}
		opts.Timeout = d
	}

	if meta.IsDefined("verbose") {
		opts.Verbose = raw.Verbose
	}

	return nil
}
