// Package cartsim plays the computer side of a dump session, standing in
// for the real hardware on bench setups (e.g. across a pty pair).
package cartsim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/zealdump/internal/protocol"
)

var ErrPayloadSizeMismatch = errors.New("cartsim: payload size does not match header geometry")

// Config describes the single session a Serve call plays out. ChunkSize
// splits the payload into paced fragments to mimic UART delivery; zero or
// negative writes it whole.
type Config struct {
	Header     protocol.Header
	Payload    []byte
	ChunkSize  int
	ChunkDelay time.Duration
}

func (c Config) Validate() error {
	if len(c.Payload) != c.Header.TotalBytes() {
		return fmt.Errorf("%w: payload=%d header=%d", ErrPayloadSizeMismatch, len(c.Payload), c.Header.TotalBytes())
	}
	return nil
}

// Serve waits for the host's trigger byte on link, then answers with the
// response header and the payload. Exactly one session is served. Bytes
// other than the trigger are discarded as line noise; reads returning
// (0, nil) are idle polls, so Serve keeps waiting until ctx is done or the
// link errors.
func Serve(ctx context.Context, link io.ReadWriter, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := awaitTrigger(ctx, link); err != nil {
		return err
	}
	log.Debug().Msg("trigger received")
	if _, err := link.Write(protocol.EncodeHeader(cfg.Header)); err != nil {
		return fmt.Errorf("cartsim: write header: %w", err)
	}
	return writePayload(ctx, link, cfg)
}

func awaitTrigger(ctx context.Context, r io.Reader) error {
	var b [1]byte
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(b[:])
		if err != nil {
			return fmt.Errorf("cartsim: await trigger: %w", err)
		}
		if n == 0 {
			continue
		}
		if b[0] == protocol.TriggerByte {
			return nil
		}
		log.Debug().Uint8("byte", b[0]).Msg("discarding noise byte")
	}
}

func writePayload(ctx context.Context, w io.Writer, cfg Config) error {
	payload := cfg.Payload
	if len(payload) == 0 {
		return nil
	}
	if cfg.ChunkSize <= 0 || cfg.ChunkSize >= len(payload) {
		if _, err := w.Write(payload); err != nil {
			return fmt.Errorf("cartsim: write payload: %w", err)
		}
		return nil
	}
	for off := 0; off < len(payload); off += cfg.ChunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := off + cfg.ChunkSize
		if end > len(payload) {
			end = len(payload)
		}
		if _, err := w.Write(payload[off:end]); err != nil {
			return fmt.Errorf("cartsim: write payload: %w", err)
		}
		if cfg.ChunkDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.ChunkDelay):
			}
		}
	}
	return nil
}
