// Package ascii converts strings to and from one-byte-per-character
// printable ASCII, the 8-bit character encoding used by CDMA SMS address
// fields in data-network mode.
package ascii

import "github.com/pkg/errors"

const (
	// Printable ASCII spans space through tilde.
	MinPrintable = 0x20
	MaxPrintable = 0x7E
)

// ToBytes converts s to one byte per character. It fails if any character
// falls outside printable ASCII; an empty string yields an empty, non-nil
// slice.
func ToBytes(s string) ([]byte, error) {
	b := make([]byte, 0, len(s))
	for i, r := range s {
		if r < MinPrintable || r > MaxPrintable {
			return nil, errors.Errorf(
				"character %q at index %d is not printable ASCII", r, i)
		}
		b = append(b, byte(r))
	}
	return b, nil
}

// FromBytes converts one-byte-per-character data back to a string, with
// the same printable-ASCII range check as ToBytes.
func FromBytes(b []byte) (string, error) {
	for i, c := range b {
		if c < MinPrintable || c > MaxPrintable {
			return "", errors.Errorf(
				"byte %#02X at index %d is not printable ASCII", c, i)
		}
	}
	return string(b), nil
}

// IsPrintable returns true if every character of s is printable ASCII.
func IsPrintable(s string) bool {
	for _, r := range s {
		if r < MinPrintable || r > MaxPrintable {
			return false
		}
	}
	return true
}
