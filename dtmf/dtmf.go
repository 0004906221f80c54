// Package dtmf implements the 4-bit dialable symbol codes used by CDMA
// SMS address fields (3GPP2 C.S0005-D, table 2.7.1.3.2.4-4, as referenced
// by C.S0015-B 3.4.3.3).
//
// Each of the twelve dialable symbols 0-9, * and # maps to a code in the
// range 1-12; code 0 and codes 13-15 are reserved. Encoding at this layer
// produces one code byte per symbol. Packing pairs of codes into single
// bytes for the air interface is a separate concern; see Pack and Unpack.
package dtmf

import (
	"strings"

	"github.com/pkg/errors"
)

// Codes for the dialable symbols without a digit-value identity. Digits
// '1'-'9' encode as their numeric values 1-9.
const (
	CodeZero  = 10
	CodeStar  = 11
	CodePound = 12

	// MaxCode is the largest assigned symbol code; 13-15 are reserved.
	MaxCode = 12
)

// IsDialable reports whether r is one of the twelve dialable symbols.
func IsDialable(r rune) bool {
	return (r >= '0' && r <= '9') || r == '*' || r == '#'
}

// Encode converts a string of dialable symbols to its symbol codes, one
// byte per symbol. The input is validated independently of any upstream
// filtering, so Encode is safe to call on arbitrary strings; it fails on
// the first character outside the dialable set.
//
// An empty input yields an empty, non-nil code slice: a zero-length
// address is a valid encoding, distinct from a failed one.
func Encode(digits string) ([]byte, error) {
	codes := make([]byte, 0, len(digits))
	for i, r := range digits {
		switch {
		case r >= '1' && r <= '9':
			codes = append(codes, byte(r-'0'))
		case r == '0':
			codes = append(codes, CodeZero)
		case r == '*':
			codes = append(codes, CodeStar)
		case r == '#':
			codes = append(codes, CodePound)
		default:
			return nil, errors.Errorf(
				"character %q at index %d is not a dialable symbol", r, i)
		}
	}
	return codes, nil
}

// Decode converts symbol codes back to their dialable symbols. It fails
// on the reserved codes 0 and 13-15, which no symbol maps to.
func Decode(codes []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(codes))
	for i, c := range codes {
		switch {
		case c >= 1 && c <= 9:
			b.WriteByte('0' + c)
		case c == CodeZero:
			b.WriteByte('0')
		case c == CodeStar:
			b.WriteByte('*')
		case c == CodePound:
			b.WriteByte('#')
		default:
			return "", errors.Errorf(
				"code %d at index %d is reserved (symbol codes are 1-12)", c, i)
		}
	}
	return b.String(), nil
}
