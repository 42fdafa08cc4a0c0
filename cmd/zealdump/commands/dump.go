package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danmuck/zealdump/internal/dump"
	"github.com/danmuck/zealdump/internal/gbcart"
	"github.com/danmuck/zealdump/internal/protocol"
	"github.com/danmuck/zealdump/internal/uart"
)

// dumpFlags holds the dump subcommand's flag values.
type dumpFlags struct {
	device  string
	out     string
	baud    int
	timeout time.Duration
}

func (f *dumpFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.device, "device", "d", "", "serial device of the 8-bit computer (e.g. /dev/ttyUSB0)")
	fs.StringVarP(&f.out, "out", "o", "", "output save file")
	fs.IntVarP(&f.baud, "baud", "b", uart.DefaultBaud, "baud rate of the serial link")
	fs.DurationVar(&f.timeout, "timeout", uart.DefaultReadTimeout, "read silence tolerance")
}

// overlay copies the flags the user explicitly set onto opts, the final
// layer over the defaults and the config file.
func (f *dumpFlags) overlay(fs *pflag.FlagSet, opts options) options {
	if fs.Changed("device") {
		opts.Device = f.device
	}
	if fs.Changed("baud") {
		opts.Baud = f.baud
	}
	if fs.Changed("timeout") {
		opts.Timeout = f.timeout
	}
	return opts
}

func dumpCmd() *cobra.Command {
	var f dumpFlags
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Pull the save cartridge contents into a .sav file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved := f.overlay(cmd.Flags(), opts)
			if resolved.Device == "" {
				return fmt.Errorf("serial device required (-d)")
			}
			if f.out == "" {
				return fmt.Errorf("output file required (-o)")
			}
			return runDump(resolved, f.out)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func runDump(opts options, outPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	port, err := uart.Open(uart.Config{
		Device:      opts.Device,
		Baud:        opts.Baud,
		ReadTimeout: opts.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = port.Close()
	}()
	log.Debug().Str("device", port.Device()).Int("baud", opts.Baud).Dur("timeout", opts.Timeout).Msg("serial link open")

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	sess := dump.NewSession(dump.Config{
		OnHeader: func(h protocol.Header) {
			fmt.Printf("Dumping %d banks of %d bytes, %d bytes in total...\n", h.BankCount, h.BankSize, h.TotalBytes())
		},
		Progress: func(received, total int) {
			log.Debug().Int("received", received).Int("total", total).Msg("transfer progress")
		},
	})
	sum, runErr := sess.Run(ctx, port, out)
	closeErr := out.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return fmt.Errorf("close output file: %w", closeErr)
	}

	if label, ok := gbcart.Label(sum.BankCount, sum.BankSize); ok {
		log.Info().Str("geometry", label).Msg("recognized cartridge save")
	}
	fmt.Printf("%s successfully dumped\n", outPath)
	return nil
}
