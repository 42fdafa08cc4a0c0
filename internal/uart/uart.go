// Package uart opens the serial link to the 8-bit computer.
package uart

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.bug.st/serial"
)

var (
	ErrDeviceRequired = errors.New("uart: device path required")
	ErrInvalidBaud    = errors.New("uart: baud rate must be positive")
	ErrInvalidTimeout = errors.New("uart: read timeout must be positive")
)

const (
	DefaultBaud        = 57600
	DefaultReadTimeout = time.Second
)

// Config describes the serial link. ReadTimeout is the silence tolerance of
// a single Read: once it elapses with no data, Read returns (0, nil).
type Config struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Baud:        DefaultBaud,
		ReadTimeout: DefaultReadTimeout,
	}
}

func (c Config) WithDefaults() Config {
	if c.Baud == 0 {
		c.Baud = DefaultBaud
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	return c
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Device) == "" {
		return ErrDeviceRequired
	}
	if c.Baud <= 0 {
		return ErrInvalidBaud
	}
	if c.ReadTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// Port is an open serial link with timed reads.
type Port struct {
	port serial.Port
	cfg  Config
}

// Open opens the device 8N1 at the configured baud rate and applies the read
// timeout. The caller owns the returned port and must Close it.
func Open(cfg Config) (*Port, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode := &serial.Mode{
		BaudRate: cfg.Baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("uart: open %s: %w", cfg.Device, err)
	}
	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("uart: set read timeout on %s: %w", cfg.Device, err)
	}
	return &Port{port: port, cfg: cfg}, nil
}

func (p *Port) Read(b []byte) (int, error)  { return p.port.Read(b) }
func (p *Port) Write(b []byte) (int, error) { return p.port.Write(b) }
func (p *Port) Close() error                { return p.port.Close() }

// Device reports the path the port was opened on.
func (p *Port) Device() string { return p.cfg.Device }
