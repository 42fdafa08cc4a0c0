package protocol

import (
	"encoding/binary"
	"fmt"
)

const (
	// TriggerByte is written by the host to start a dump session.
	TriggerByte byte = '!'

	// HeaderMarker opens every response header sent by the computer.
	HeaderMarker byte = '='

	// HeaderLen is the fixed response header length in bytes:
	// marker, bank count, bank size (little-endian u16).
	HeaderLen = 4
)

// maxTotalBytes is the largest payload a header can describe
// (255 banks of 65535 bytes).
const maxTotalBytes = 255 * 65535

// Header describes the geometry of one save transfer.
type Header struct {
	BankCount uint8
	BankSize  uint16
}

// TotalBytes is the exact payload length announced by the header.
func (h Header) TotalBytes() int {
	return int(h.BankCount) * int(h.BankSize)
}

// HeaderError reports a response that does not open with HeaderMarker.
// Marker holds the byte actually received.
type HeaderError struct {
	Marker byte
}

func (e HeaderError) Error() string {
	return fmt.Sprintf("protocol: invalid header marker 0x%02x (want 0x%02x)", e.Marker, HeaderMarker)
}

// DecodeHeader parses the fixed response header.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) != HeaderLen {
		return Header{}, fmt.Errorf("protocol: invalid header length: %d", len(b))
	}
	if b[0] != HeaderMarker {
		return Header{}, HeaderError{Marker: b[0]}
	}
	return Header{
		BankCount: b[1],
		BankSize:  binary.LittleEndian.Uint16(b[2:4]),
	}, nil
}

// EncodeHeader renders h the way the computer puts it on the wire.
func EncodeHeader(h Header) []byte {
	buf := make([]byte, HeaderLen)
	buf[0] = HeaderMarker
	buf[1] = h.BankCount
	binary.LittleEndian.PutUint16(buf[2:4], h.BankSize)
	return buf
}
