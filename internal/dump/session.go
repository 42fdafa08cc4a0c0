package dump

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/zealdump/internal/protocol"
)

// Config carries the optional observation hooks of a Session.
type Config struct {
	// OnHeader fires once the response header has been decoded.
	OnHeader func(protocol.Header)
	// Progress fires after every payload fragment with the running byte count.
	Progress func(received, total int)
}

// Session performs one complete save dump over a serial link.
//
// The link is any duplex byte stream with timed reads: a Read returning
// (0, nil) means the configured silence timeout elapsed with nothing more to
// deliver, io.EOF or any other read error means the link is gone. Ports
// opened by internal/uart behave this way.
type Session struct {
	cfg Config
}

func NewSession(cfg Config) *Session {
	return &Session{cfg: cfg}
}

// Summary reports what a completed session transferred.
type Summary struct {
	BankCount  uint8
	BankSize   uint16
	TotalBytes int
}

// Run executes one dump attempt: trigger, header, payload, sink write. It is
// strictly sequential and never retries. The payload is buffered in full
// before out is touched, so a short read leaves the sink untouched. Run
// closes neither link nor out. ctx is consulted between solicitation rounds;
// cancelling it aborts at the next fragment boundary.
func (s *Session) Run(ctx context.Context, link io.ReadWriter, out io.Writer) (Summary, error) {
	if _, err := link.Write([]byte{protocol.TriggerByte}); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrTriggerWrite, err)
	}
	log.Debug().Msg("session triggered")

	var hdr [protocol.HeaderLen]byte
	if err := readFull(ctx, link, hdr[:], nil); err != nil {
		return Summary{}, fmt.Errorf("read response header: %w", err)
	}
	h, err := protocol.DecodeHeader(hdr[:])
	if err != nil {
		return Summary{}, err
	}
	log.Debug().
		Uint8("banks", h.BankCount).
		Uint16("bank_size", h.BankSize).
		Int("total_bytes", h.TotalBytes()).
		Msg("header received")
	if s.cfg.OnHeader != nil {
		s.cfg.OnHeader(h)
	}

	payload := make([]byte, h.TotalBytes())
	if err := readFull(ctx, link, payload, s.cfg.Progress); err != nil {
		return Summary{}, fmt.Errorf("read save payload: %w", err)
	}

	if len(payload) > 0 {
		if _, err := out.Write(payload); err != nil {
			return Summary{}, fmt.Errorf("%w: %v", ErrSinkWrite, err)
		}
	}
	log.Debug().Int("total_bytes", len(payload)).Msg("payload written")

	return Summary{BankCount: h.BankCount, BankSize: h.BankSize, TotalBytes: h.TotalBytes()}, nil
}

// readFull solicits reads until buf is full. A zero-byte read with nil error
// is the link's silence timeout; it and every read error before completion
// become a ShortReadError carrying the byte counts. Data arriving together
// with io.EOF still completes the read.
func readFull(ctx context.Context, r io.Reader, buf []byte, progress func(received, total int)) error {
	total := len(buf)
	received := 0
	for received < total {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf[received:])
		received += n
		if n > 0 && progress != nil {
			progress(received, total)
		}
		if received == total {
			return nil
		}
		if err != nil {
			return ShortReadError{Wanted: total, Got: received, Cause: err}
		}
		if n == 0 {
			return ShortReadError{Wanted: total, Got: received}
		}
	}
	return nil
}
