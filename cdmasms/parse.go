package cdmasms

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sms-sw-toolkit/cdmacode/ascii"
	"github.com/sms-sw-toolkit/cdmacode/dtmf"
	"github.com/sms-sw-toolkit/cdmacode/logger"
)

// The two ways an address can be rejected. Both are terminal: malformed
// input is a deterministic, permanent rejection, never retried. Parse and
// ParseField wrap these with context; match them with errors.Cause.
var (
	// ErrInvalidInput means no address was supplied at all.
	ErrInvalidInput = errors.New("no address provided")
	// ErrUnencodable means the address, after filtering, has no byte
	// representation in either digit mode.
	ErrUnencodable = errors.New("address cannot be encoded")
)

// log is the package's diagnostic sink. Diagnostics never alter control
// flow; by default they are discarded.
var log = logger.NewNoop()

// SetLogger installs l as the diagnostic sink for this package, tagged
// with the "cdmasms" component. Intended to be called once at startup,
// before any concurrent use of Parse.
func SetLogger(l logger.Logger) {
	log = logger.WithComponent(l, "cdmasms")
}

const (
	charDialable = 1
	charSugar    = 2
)

// numericCharSet classifies the characters the numeric filter accepts:
// the twelve dialable symbols are kept, punctuation "sugar" people type
// into phone numbers is dropped. A character in neither class makes the
// filter inapplicable. Built once, read-only, safe for unsynchronized
// concurrent reads.
var numericCharSet = [128]uint8{
	'0': charDialable, '1': charDialable, '2': charDialable,
	'3': charDialable, '4': charDialable, '5': charDialable,
	'6': charDialable, '7': charDialable, '8': charDialable,
	'9': charDialable, '*': charDialable, '#': charDialable,

	'(': charSugar, ')': charSugar, ' ': charSugar, '-': charSugar,
	'+': charSugar, '.': charSugar, '/': charSugar, '\\': charSugar,
}

// FilterNumericSugar strips the punctuation sugar characters
// ( ) space - + . / \ from address, keeping the dialable symbols 0-9 * #
// in their input order. ok is false if any character belongs to neither
// set (a letter, '@', anything non-ASCII): the address is then not a
// sugared numeric string and the filter result does not apply.
func FilterNumericSugar(address string) (filtered string, ok bool) {
	var b strings.Builder
	b.Grow(len(address))
	for _, r := range address {
		if r > 127 {
			return "", false
		}
		switch numericCharSet[r] {
		case charDialable:
			b.WriteRune(r)
		case charSugar:
			// dropped
		default:
			return "", false
		}
	}
	return b.String(), true
}

// FilterWhitespace removes space, CR, LF and tab from address, preserving
// every other character -- non-ASCII included, which then fails
// downstream at ASCII conversion. It is the fallback source text for
// 8-bit encoding when the numeric filter rejected the input.
func FilterWhitespace(address string) string {
	var b strings.Builder
	b.Grow(len(address))
	for _, r := range address {
		switch r {
		case ' ', '\r', '\n', '\t':
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse classifies a human-entered address string and returns the fully
// populated Address, or ErrUnencodable if the string has no byte
// representation. The result is all-or-nothing: no partial Address ever
// escapes.
//
// Classification precedence, first match wins:
//
//	'+' anywhere  -> international/IP, ISDN telephony plan
//	'@' anywhere  -> national/email
//	sugared numeric string -> 4-bit DTMF encoding
//
// Only the third rule attempts DTMF encoding; everything else falls
// through to 8-bit ASCII in data-network mode. The text encoded there is
// the numeric-filtered string when the filter succeeded, the
// whitespace-filtered original otherwise. Note the consequence for
// '+'-prefixed numbers: "+14155551234" classifies as international and
// its digits are encoded as ASCII, not DTMF, because the first rule
// short-circuits the DTMF attempt. That matches deployed behavior and is
// deliberate.
//
// Parse accepts the empty string: the numeric filter succeeds vacuously
// and the result is a valid zero-digit DTMF address.
func Parse(address string) (*Address, error) {
	addr := &Address{
		ton:     TONUnknown,
		plan:    PlanUnknown,
		display: address,
	}

	filtered, numeric := FilterNumericSugar(address)

	var codes []byte
	switch {
	case strings.ContainsRune(address, '+'):
		addr.ton = TONInternationalOrIP
		addr.plan = PlanISDNTelephony
	case strings.ContainsRune(address, '@'):
		addr.ton = TONNationalOrEmail
	case numeric:
		// the encoder re-validates, but the numeric filter only ever
		// passes dialable symbols through, so this cannot fail here
		if c, err := dtmf.Encode(filtered); err == nil {
			codes = c
		}
	}

	if codes != nil {
		addr.digitMode = DigitMode4BitDTMF
		addr.numberMode = NumberModeNotDataNetwork
		addr.encoded = codes
	} else {
		addr.digitMode = DigitMode8BitChar
		addr.numberMode = NumberModeDataNetwork
		text := filtered
		if !numeric {
			text = FilterWhitespace(address)
		}
		b, err := ascii.ToBytes(text)
		if err != nil {
			log.Debug(fmt.Sprintf("cannot encode address %q: %s", address, err))
			return nil, errors.Wrapf(ErrUnencodable, "address %q", address)
		}
		addr.encoded = b
	}

	addr.numDigits = len(addr.encoded)
	return addr, nil
}

// ParseField is the optional-field entry point for message-layer callers:
// a nil address fails with ErrInvalidInput; otherwise it delegates to
// Parse.
func ParseField(address *string) (*Address, error) {
	if address == nil {
		log.Error("no address provided")
		return nil, ErrInvalidInput
	}
	return Parse(*address)
}
