package metastring

import "unicode/utf8"

// MaxLength is the longest input, in characters, the encoder accepts.
const MaxLength = 32767

// Encoder turns identifier strings into EncodedString values. The two
// special characters extend the 64-symbol alphabet and must match the
// Decoder that later reads the output. An Encoder holds no mutable state
// and is safe for concurrent use.
type Encoder struct {
	alpha alphabet
}

// NewEncoder returns an Encoder admitting specialChar1 and specialChar2.
func NewEncoder(specialChar1, specialChar2 rune) *Encoder {
	return &Encoder{alpha: alphabet{special1: specialChar1, special2: specialChar2}}
}

// Encode is shorthand for NewEncoder(specialChar1, specialChar2).Encode(text).
func Encode(text string, specialChar1, specialChar2 rune) (EncodedString, error) {
	return NewEncoder(specialChar1, specialChar2).Encode(text)
}

// ComputeEncoding returns the tag SelectEncoding picks for text.
func (e *Encoder) ComputeEncoding(text string) Encoding {
	return SelectEncoding(ComputeStatistics(text, e.alpha.special1, e.alpha.special2), text)
}

// Encode selects an encoding for text and packs it.
//
// Only LowerSpecial output is produced. When the selector picks any other
// tag Encode fails with ErrUnsupportedEncoding and the caller decides
// whether to fall back, for example to EncodeAs(text, UTF8).
func (e *Encoder) Encode(text string) (EncodedString, error) {
	enc := e.ComputeEncoding(text)
	if enc != LowerSpecial {
		return EncodedString{}, UnsupportedEncoding(enc)
	}
	return e.EncodeAs(text, enc)
}

// EncodeAs packs text with an explicit encoding, bypassing selection.
// All five tags are supported. Characters the layout cannot represent
// fail with ErrUnsupportedCharacter:
//
//   - FirstToLowerSpecial requires an upper-case first letter followed by
//     LowerSpecial characters.
//   - AllToLowerSpecial reserves '1' as its escape, so a literal '1' is
//     rejected.
func (e *Encoder) EncodeAs(text string, enc Encoding) (EncodedString, error) {
	if !enc.Valid() {
		return EncodedString{}, InvalidEncodingFlag(enc)
	}
	if n := utf8.RuneCountInString(text); n > MaxLength {
		return EncodedString{}, StringTooLong(n)
	}
	out := EncodedString{
		text:         text,
		encoding:     enc,
		specialChar1: e.alpha.special1,
		specialChar2: e.alpha.special2,
	}
	if text == "" {
		return out, nil
	}

	var (
		data []byte
		err  error
	)
	switch enc {
	case LowerSpecial:
		data, err = e.encodeLowerSpecial(text)
	case LowerUpperDigitSpecial:
		data, err = e.encodeLowerUpperDigitSpecial(text)
	case FirstToLowerSpecial:
		data, err = e.encodeFirstToLowerSpecial(text)
	case AllToLowerSpecial:
		data, err = e.encodeAllToLowerSpecial(text)
	case UTF8:
		data = []byte(text)
	}
	if err != nil {
		return EncodedString{}, err
	}
	out.data = data
	return out, nil
}

func (e *Encoder) encodeLowerSpecial(text string) ([]byte, error) {
	codes := make([]byte, 0, len(text))
	for _, r := range text {
		v, ok := lowerSpecialValue(r)
		if !ok {
			return nil, UnsupportedCharacter(r, LowerSpecial)
		}
		codes = append(codes, v)
	}
	return pack(codes, lowerSpecialBits), nil
}

func (e *Encoder) encodeLowerUpperDigitSpecial(text string) ([]byte, error) {
	codes := make([]byte, 0, len(text))
	for _, r := range text {
		v, ok := e.alpha.value(r)
		if !ok {
			return nil, UnsupportedCharacter(r, LowerUpperDigitSpecial)
		}
		codes = append(codes, v)
	}
	return pack(codes, lowerUpperDigitSpecialBits), nil
}

func (e *Encoder) encodeFirstToLowerSpecial(text string) ([]byte, error) {
	codes := make([]byte, 0, len(text))
	for i, r := range text {
		if i == 0 {
			if !isUpper(r) {
				return nil, UnsupportedCharacter(r, FirstToLowerSpecial)
			}
			r = toLower(r)
		}
		v, ok := lowerSpecialValue(r)
		if !ok {
			return nil, UnsupportedCharacter(r, FirstToLowerSpecial)
		}
		codes = append(codes, v)
	}
	return pack(codes, lowerSpecialBits), nil
}

func (e *Encoder) encodeAllToLowerSpecial(text string) ([]byte, error) {
	codes := make([]byte, 0, 2*len(text))
	for _, r := range text {
		if r == escapeMarker {
			return nil, UnsupportedCharacter(r, AllToLowerSpecial)
		}
		if isUpper(r) {
			codes = append(codes, lowerSpecialOne)
			r = toLower(r)
		}
		v, ok := lowerSpecialValue(r)
		if !ok {
			return nil, UnsupportedCharacter(r, AllToLowerSpecial)
		}
		codes = append(codes, v)
	}
	return pack(codes, lowerSpecialBits), nil
}
