package dtmf

import "github.com/pkg/errors"

// Pack packs symbol codes two to a byte for the air interface, the first
// code of each pair in the high nibble. An odd final code is padded with a
// zero low nibble; since 0 is a reserved code, the pad is unambiguous.
// Every code must be an assigned symbol code (1-12).
func Pack(codes []byte) ([]byte, error) {
	packed := make([]byte, (len(codes)+1)/2)
	for i, c := range codes {
		if c < 1 || c > MaxCode {
			return nil, errors.Errorf(
				"cannot pack reserved code %d at index %d (symbol codes are 1-12)", c, i)
		}
		if i&1 == 0 {
			packed[i/2] = c << 4
		} else {
			packed[i/2] |= c
		}
	}
	return packed, nil
}

// Unpack splits packed nibble pairs back into count individual symbol
// codes, one per byte. It fails if count does not fit the packed length,
// if any unpacked code is reserved, or if a pad nibble is not zero.
func Unpack(packed []byte, count int) ([]byte, error) {
	if count < 0 {
		return nil, errors.Errorf("digit count cannot be negative: %d", count)
	}
	if len(packed) != (count+1)/2 {
		return nil, errors.Errorf("%d digits should pack to %d bytes, "+
			"but this has %d bytes", count, (count+1)/2, len(packed))
	}
	codes := make([]byte, count)
	for i := range codes {
		c := packed[i/2]
		if i&1 == 0 {
			c >>= 4
		} else {
			c &= 0x0F
		}
		if c < 1 || c > MaxCode {
			return nil, errors.Errorf(
				"code %d at index %d is reserved (symbol codes are 1-12)", c, i)
		}
		codes[i] = c
	}
	if count&1 == 1 && packed[len(packed)-1]&0x0F != 0 {
		return nil, errors.Errorf("pad nibble should be zero, but is %d",
			packed[len(packed)-1]&0x0F)
	}
	return codes, nil
}
