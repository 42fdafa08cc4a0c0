// Package gbcart carries Game Boy cartridge save-geometry vocabulary.
//
// Battery-backed carts expose SRAM in 8 KB banks (1, 4, 8 or 16 of them,
// depending on the RAM-size byte in the cartridge header); MBC2 carts have a
// single 512-byte on-chip bank instead.
package gbcart

import "fmt"

const (
	// BankSizeSRAM is the size of one cartridge SRAM bank.
	BankSizeSRAM = 8 * 1024
	// BankSizeMBC2 is the size of the single on-chip RAM bank of MBC2 carts.
	BankSizeMBC2 = 512
)

// Label describes a recognized save geometry in human terms. The second
// return is false for geometries no known cartridge type produces; callers
// treat those as informational, never as an error.
func Label(bankCount uint8, bankSize uint16) (string, bool) {
	switch {
	case bankSize == BankSizeMBC2 && bankCount == 1:
		return "MBC2 512-byte save", true
	case bankSize == BankSizeSRAM:
		switch bankCount {
		case 1, 4, 8, 16:
			totalKB := int(bankCount) * BankSizeSRAM / 1024
			return fmt.Sprintf("%d KB battery save (%d banks of %d bytes)", totalKB, bankCount, bankSize), true
		}
	}
	return "", false
}
