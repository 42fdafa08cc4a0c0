// Package dump owns the host side of a save-cartridge dump session.
//
// Ownership boundary:
// - trigger / header / payload / sink sequencing
// - solicitation loop over a timed-read link
// - transfer-level error taxonomy
//
// The serial link and the output sink are supplied by the caller; this
// package never opens or closes either.
package dump
