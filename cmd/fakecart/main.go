// fakecart serves one save-dump session the way the 8-bit computer would,
// so the host tool can be exercised without hardware (pair it with zealdump
// across a socat pty pair).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danmuck/zealdump/internal/cartsim"
	"github.com/danmuck/zealdump/internal/gbcart"
	"github.com/danmuck/zealdump/internal/logging"
	"github.com/danmuck/zealdump/internal/protocol"
	"github.com/danmuck/zealdump/internal/uart"
)

type options struct {
	device   string
	baud     int
	input    string
	banks    int
	bankSize int
	chunk    int
	delay    time.Duration
	verbose  bool
}

func main() {
	opts := parseFlags()
	logging.ConfigureRuntime("fakecart", opts.verbose)
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "fakecart: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.device, "d", "", "serial device to serve on")
	flag.IntVar(&opts.baud, "b", uart.DefaultBaud, "baud rate")
	flag.StringVar(&opts.input, "i", "", "save file to serve; omit to generate a test pattern")
	flag.IntVar(&opts.banks, "n", 4, "bank count when generating")
	flag.IntVar(&opts.bankSize, "s", gbcart.BankSizeSRAM, "bank size when generating, and bank size of -i files")
	flag.IntVar(&opts.chunk, "chunk", 0, "payload chunk size (0 = single write)")
	flag.DurationVar(&opts.delay, "delay", 0, "pause between payload chunks")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Parse()
	return opts
}

func run(opts options) error {
	if opts.device == "" {
		return fmt.Errorf("serial device required (-d)")
	}
	cfg, err := buildSession(opts)
	if err != nil {
		return err
	}

	port, err := uart.Open(uart.Config{Device: opts.device, Baud: opts.baud})
	if err != nil {
		return err
	}
	defer func() {
		_ = port.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving %d banks of %d bytes on %s, waiting for the dump trigger...\n",
		cfg.Header.BankCount, cfg.Header.BankSize, opts.device)
	if err := cartsim.Serve(ctx, port, cfg); err != nil {
		return err
	}
	fmt.Println("Session served")
	return nil
}

func buildSession(opts options) (cartsim.Config, error) {
	cfg := cartsim.Config{ChunkSize: opts.chunk, ChunkDelay: opts.delay}

	if opts.input != "" {
		payload, err := os.ReadFile(opts.input)
		if err != nil {
			return cartsim.Config{}, fmt.Errorf("read save file: %w", err)
		}
		header, err := headerForSize(len(payload), opts.bankSize)
		if err != nil {
			return cartsim.Config{}, err
		}
		cfg.Header = header
		cfg.Payload = payload
		return cfg, nil
	}

	if opts.banks < 0 || opts.banks > 255 {
		return cartsim.Config{}, fmt.Errorf("bank count %d out of range", opts.banks)
	}
	if opts.bankSize < 0 || opts.bankSize > 65535 {
		return cartsim.Config{}, fmt.Errorf("bank size %d out of range", opts.bankSize)
	}
	cfg.Header = protocol.Header{BankCount: uint8(opts.banks), BankSize: uint16(opts.bankSize)}
	cfg.Payload = make([]byte, cfg.Header.TotalBytes())
	for i := range cfg.Payload {
		cfg.Payload[i] = byte(i % 256)
	}
	return cfg, nil
}

// headerForSize derives the response header for a save file, given the bank
// size its cartridge type uses.
func headerForSize(total, bankSize int) (protocol.Header, error) {
	if bankSize <= 0 || bankSize > 65535 {
		return protocol.Header{}, fmt.Errorf("bank size %d out of range", bankSize)
	}
	if total%bankSize != 0 {
		return protocol.Header{}, fmt.Errorf("save size %d is not a multiple of bank size %d", total, bankSize)
	}
	banks := total / bankSize
	if banks > 255 {
		return protocol.Header{}, fmt.Errorf("save needs %d banks, the header allows at most 255", banks)
	}
	return protocol.Header{BankCount: uint8(banks), BankSize: uint16(bankSize)}, nil
}
