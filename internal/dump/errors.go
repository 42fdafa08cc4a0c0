package dump

import (
	"errors"
	"fmt"
)

var (
	ErrTriggerWrite = errors.New("dump: trigger write failed")
	ErrSinkWrite    = errors.New("dump: sink write failed")
)

// ShortReadError reports a transfer that ended before the expected number of
// bytes arrived. Cause is nil when the link simply went silent past its read
// timeout; otherwise it holds the read error (io.EOF for a closed link).
type ShortReadError struct {
	Wanted int
	Got    int
	Cause  error
}

func (e ShortReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dump: short read: got %d of %d bytes: %v", e.Got, e.Wanted, e.Cause)
	}
	return fmt.Sprintf("dump: short read: got %d of %d bytes", e.Got, e.Wanted)
}

func (e ShortReadError) Unwrap() error { return e.Cause }
