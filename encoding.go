package metastring

import "fmt"

// Encoding identifies the bit layout of an encoded identifier. The numeric
// values are the wire tags shared with other producers and must not change.
type Encoding uint8

const (
	// UTF8 stores the text bytes unchanged.
	UTF8 Encoding = 0x00
	// LowerSpecial packs a-z, '0', '_', '3' and '1' at 5 bits per char.
	LowerSpecial Encoding = 0x01
	// LowerUpperDigitSpecial packs a-z, A-Z, 0-9 and the two special
	// characters at 6 bits per char.
	LowerUpperDigitSpecial Encoding = 0x02
	// FirstToLowerSpecial is LowerSpecial with the first character
	// upper-cased on decode.
	FirstToLowerSpecial Encoding = 0x03
	// AllToLowerSpecial is LowerSpecial where every upper-case letter is
	// written as '1' followed by its lower-case form.
	AllToLowerSpecial Encoding = 0x04
)

const (
	lowerSpecialBits           = 5
	lowerUpperDigitSpecialBits = 6
)

var encodingNames = [...]string{
	UTF8:                   "utf8",
	LowerSpecial:           "lower_special",
	LowerUpperDigitSpecial: "lower_upper_digit_special",
	FirstToLowerSpecial:    "first_to_lower_special",
	AllToLowerSpecial:      "all_to_lower_special",
}

// Valid reports whether e is one of the five known tags.
func (e Encoding) Valid() bool { return int(e) < len(encodingNames) }

func (e Encoding) String() string {
	if !e.Valid() {
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
	return encodingNames[e]
}

// BitsPerChar returns the packed width of one character, or 0 for UTF8 and
// unknown tags.
func (e Encoding) BitsPerChar() int {
	switch e {
	case LowerSpecial, FirstToLowerSpecial, AllToLowerSpecial:
		return lowerSpecialBits
	case LowerUpperDigitSpecial:
		return lowerUpperDigitSpecialBits
	default:
		return 0
	}
}

// ParseEncoding maps a name produced by String back to its tag.
func ParseEncoding(name string) (Encoding, error) {
	for i, n := range encodingNames {
		if n == name {
			return Encoding(i), nil
		}
	}
	return 0, &Error{
		Code:    ErrCodeInvalidEncodingFlag,
		Message: fmt.Sprintf("unknown encoding name %q", name),
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, InvalidEncodingFlag(e)
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
