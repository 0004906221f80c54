// Package cdmasms models the address field of a CDMA SMS message as
// defined by 3GPP2 C.S0015-B (Short Message Service over CDMA), section
// 3.4.3.3. At present this code should be compliant with Version 2.0
// (2005 September).
//
// An address field can carry three rather different things: a dialable
// telephone number (possibly international), an email address, or an
// opaque data-network address. The standard distinguishes these with two
// flags and two classification fields:
//   - the digit mode selects between 4-bit DTMF digit codes and 8-bit
//     character codes for the encoded units;
//   - the number mode marks the address as a conventional dialable/email
//     address or a data-network address;
//   - the type of number and numbering plan classify the address's scope
//     (international vs. national, ISDN telephony vs. unknown).
//
// The interesting part of the package is Parse, which takes the address
// the way a human entered it -- "+1 (415) 555-1234", "user@example.com",
// "555-1234" -- and picks the wire representation: it classifies the
// string by content, strips the punctuation "sugar" people type into
// phone numbers, and encodes the result either as one 4-bit DTMF code per
// digit or as one printable-ASCII byte per character. The classification
// rules are order-sensitive and their precedence is preserved here exactly
// as the standard's deployed implementations behave, including the corner
// cases; see Parse for the details.
//
// Everything else is plain data holding: the Address type keeps the
// classification fields, the encoded digits, and the original string for
// display, and is immutable once built.
//
// This package stops at the address field. Assembling full SMS
// transport-layer PDUs, packing pairs of 4-bit codes into bytes for the
// air interface (see the dtmf package), and locale-aware number
// normalization such as country-code inference are all out of scope.
package cdmasms
