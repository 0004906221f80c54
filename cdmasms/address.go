package cdmasms

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sms-sw-toolkit/cdmacode/ascii"
	"github.com/sms-sw-toolkit/cdmacode/dtmf"
)

const (
	// MaxAddressDigits is the contractual limit on encoded address
	// digits (C.S0015-B 3.4.3.3). Parse does not enforce it; Validate
	// checks it.
	MaxAddressDigits = 36
	// MaxSubaddressDigits bounds the subaddress field the same way.
	MaxSubaddressDigits = 36
)

// DigitMode selects the byte-encoding strategy for the address digits.
type DigitMode uint8

const (
	// DigitMode4BitDTMF encodes each digit as a 4-bit DTMF symbol code.
	DigitMode4BitDTMF = DigitMode(0)
	// DigitMode8BitChar encodes each character as an 8-bit ASCII code.
	DigitMode8BitChar = DigitMode(1)
)

func (dm DigitMode) IsValid() bool {
	return dm == DigitMode4BitDTMF || dm == DigitMode8BitChar
}

func (dm DigitMode) String() string {
	switch dm {
	case DigitMode4BitDTMF:
		return "4BitDTMF"
	case DigitMode8BitChar:
		return "8BitChar"
	}
	return "Unknown digit mode: " + strconv.Itoa(int(dm))
}

// NumberMode marks the address as a conventional dialable/email address
// or an opaque data-network address.
type NumberMode uint8

const (
	NumberModeNotDataNetwork = NumberMode(0)
	NumberModeDataNetwork    = NumberMode(1)
)

func (nm NumberMode) IsValid() bool {
	return nm == NumberModeNotDataNetwork || nm == NumberModeDataNetwork
}

func (nm NumberMode) String() string {
	switch nm {
	case NumberModeNotDataNetwork:
		return "NotDataNetwork"
	case NumberModeDataNetwork:
		return "DataNetwork"
	}
	return "Unknown number mode: " + strconv.Itoa(int(nm))
}

// TypeOfNumber classifies the address's scope per C.S0015-B table
// 2.7.1.3.2.4-2. When the number mode is data-network, values 1 and 2
// mean "internet protocol" and "email address" rather than their
// telephony readings; the constants carry both names.
type TypeOfNumber uint8

const (
	TONUnknown           = TypeOfNumber(0)
	TONInternationalOrIP = TypeOfNumber(1)
	TONNationalOrEmail   = TypeOfNumber(2)
	TONNetwork           = TypeOfNumber(3)
	TONSubscriber        = TypeOfNumber(4)
	TONAlphanumeric      = TypeOfNumber(5)
	TONAbbreviated       = TypeOfNumber(6)
	TONReserved          = TypeOfNumber(7)
)

// IsValid returns true for any of the eight assigned 3-bit values,
// including the reserved one: reserved is a legal wire value.
func (ton TypeOfNumber) IsValid() bool {
	return ton <= TONReserved
}

func (ton TypeOfNumber) String() string {
	switch ton {
	case TONUnknown:
		return "Unknown"
	case TONInternationalOrIP:
		return "International/IP"
	case TONNationalOrEmail:
		return "National/Email"
	case TONNetwork:
		return "Network"
	case TONSubscriber:
		return "Subscriber"
	case TONAlphanumeric:
		return "Alphanumeric"
	case TONAbbreviated:
		return "Abbreviated"
	case TONReserved:
		return "Reserved"
	}
	return "Unknown type of number: " + strconv.Itoa(int(ton))
}

// NumberingPlan identifies the numbering scheme the digits follow. The
// standard also assigns data (3), telex (4) and private (9), but this
// codec never produces them and gives them no named constants.
type NumberingPlan uint8

const (
	PlanUnknown       = NumberingPlan(0)
	PlanISDNTelephony = NumberingPlan(1)
)

// IsValid returns true for the two plan values this codec produces.
func (np NumberingPlan) IsValid() bool {
	return np == PlanUnknown || np == PlanISDNTelephony
}

func (np NumberingPlan) String() string {
	switch np {
	case PlanUnknown:
		return "Unknown"
	case PlanISDNTelephony:
		return "ISDN/Telephony"
	}
	return "Unknown numbering plan: " + strconv.Itoa(int(np))
}

// Address is a fully classified and encoded CDMA SMS address field. It is
// built once -- by Parse for human-entered text, or by New for fields
// handed over by a transport decoder -- and is read-only afterward.
// Accessors return internal state; callers must not modify the encoded
// digit slice.
type Address struct {
	digitMode  DigitMode
	numberMode NumberMode
	ton        TypeOfNumber
	plan       NumberingPlan
	numDigits  int
	display    string
	encoded    []byte
}

func (a *Address) DigitMode() DigitMode {
	return a.digitMode
}

func (a *Address) NumberMode() NumberMode {
	return a.numberMode
}

func (a *Address) TypeOfNumber() TypeOfNumber {
	return a.ton
}

func (a *Address) NumberingPlan() NumberingPlan {
	return a.plan
}

// NumberOfDigits is the count of encoded units, always equal to
// len(EncodedDigits()).
func (a *Address) NumberOfDigits() int {
	return a.numDigits
}

// DisplayAddress is the original input string, retained verbatim --
// casing and punctuation included -- for display only.
func (a *Address) DisplayAddress() string {
	return a.display
}

// EncodedDigits is the canonical wire encoding: one 4-bit DTMF code per
// byte in 4BitDTMF mode, one ASCII byte per character in 8BitChar mode.
func (a *Address) EncodedDigits() []byte {
	return a.encoded
}

// New returns an Address with the given field values, deriving the digit
// count from the encoded data. If the values are inconsistent with the
// standard, the error is non-nil, but this still returns the inconsistent
// Address so the caller can inspect or render it.
func New(digitMode DigitMode, numberMode NumberMode, ton TypeOfNumber,
	plan NumberingPlan, display string, encoded []byte) (*Address, error) {
	a := &Address{
		digitMode:  digitMode,
		numberMode: numberMode,
		ton:        ton,
		plan:       plan,
		numDigits:  len(encoded),
		display:    display,
		encoded:    encoded,
	}
	return a, a.Validate()
}

// Validate checks the contractual constraints Parse does not enforce:
// field limits, enum ranges, the digit-count identity, the pairing of
// digit mode with number mode, and the 4-bit code range.
func (a *Address) Validate() error {
	if !a.digitMode.IsValid() {
		return errors.Errorf("digit mode must be 0 or 1, but is %d", uint8(a.digitMode))
	}
	if !a.numberMode.IsValid() {
		return errors.Errorf("number mode must be 0 or 1, but is %d", uint8(a.numberMode))
	}
	if !a.ton.IsValid() {
		return errors.Errorf("type of number must be in [0,7], but is %d", uint8(a.ton))
	}
	if !a.plan.IsValid() {
		return errors.Errorf("numbering plan must be 0 (unknown) or 1 (ISDN), "+
			"but is %d", uint8(a.plan))
	}
	if a.numDigits != len(a.encoded) {
		return errors.Errorf("numberOfDigits is %d, but there are %d encoded bytes",
			a.numDigits, len(a.encoded))
	}
	if a.numDigits > MaxAddressDigits {
		return errors.Errorf("addresses are limited to at most %d digits, "+
			"but this has %d", MaxAddressDigits, a.numDigits)
	}
	if (a.digitMode == DigitMode4BitDTMF) != (a.numberMode == NumberModeNotDataNetwork) {
		return errors.Errorf("digit mode %s cannot pair with number mode %s",
			a.digitMode, a.numberMode)
	}
	if a.digitMode == DigitMode4BitDTMF {
		for i, c := range a.encoded {
			if c > dtmf.MaxCode {
				return errors.Errorf("4-bit digit codes must be in [0,12], "+
					"but the code at index %d is %d", i, c)
			}
		}
	}
	return nil
}

// DecodeText recovers the filtered address text from the encoded digits:
// DTMF codes back to their dialable symbols, or ASCII bytes back to a
// string. It does not consult the display address.
func (a *Address) DecodeText() (string, error) {
	if a.digitMode == DigitMode4BitDTMF {
		return dtmf.Decode(a.encoded)
	}
	return ascii.FromBytes(a.encoded)
}

func (a *Address) String() string {
	return fmt.Sprintf("Address{digitMode: %s, numberMode: %s, typeOfNumber: %s, "+
		"numberingPlan: %s, numberOfDigits: %d, display: %q, encoded: %s}",
		a.digitMode, a.numberMode, a.ton, a.plan, a.numDigits, a.display,
		strings.ToUpper(hex.EncodeToString(a.encoded)))
}
