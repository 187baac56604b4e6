package metastring

// Decoder turns packed buffers back into text. Its special characters must
// be the pair the producer used; a mismatch yields different characters at
// codes 62 and 63, not an error.
type Decoder struct {
	alpha alphabet
}

// NewDecoder returns a Decoder using specialChar1 and specialChar2.
func NewDecoder(specialChar1, specialChar2 rune) *Decoder {
	return &Decoder{alpha: alphabet{special1: specialChar1, special2: specialChar2}}
}

// Decode is shorthand for NewDecoder(specialChar1, specialChar2).Decode(data, enc).
func Decode(data []byte, enc Encoding, specialChar1, specialChar2 rune) (string, error) {
	return NewDecoder(specialChar1, specialChar2).Decode(data, enc)
}

// Decode inverts any of the five encodings. A nil or empty buffer is the
// absence marker written for empty text and decodes to "" under any tag.
func (d *Decoder) Decode(data []byte, enc Encoding) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	switch enc {
	case LowerSpecial:
		chars, err := decodeLowerSpecial(data, enc)
		if err != nil {
			return "", err
		}
		return string(chars), nil

	case LowerUpperDigitSpecial:
		codes := unpack(data, lowerUpperDigitSpecialBits)
		chars := make([]rune, len(codes))
		for i, v := range codes {
			r, ok := d.alpha.char(v)
			if !ok {
				return "", InvalidCharacterValue(v, enc)
			}
			chars[i] = r
		}
		return string(chars), nil

	case FirstToLowerSpecial:
		chars, err := decodeLowerSpecial(data, enc)
		if err != nil {
			return "", err
		}
		if len(chars) > 0 && isLower(chars[0]) {
			chars[0] = toUpper(chars[0])
		}
		return string(chars), nil

	case AllToLowerSpecial:
		chars, err := decodeLowerSpecial(data, enc)
		if err != nil {
			return "", err
		}
		return unescapeUpper(chars, enc)

	case UTF8:
		return string(data), nil

	default:
		return "", InvalidEncodingFlag(enc)
	}
}

func decodeLowerSpecial(data []byte, enc Encoding) ([]rune, error) {
	codes := unpack(data, lowerSpecialBits)
	chars := make([]rune, len(codes))
	for i, v := range codes {
		r, ok := lowerSpecialChar(v)
		if !ok {
			return nil, InvalidCharacterValue(v, enc)
		}
		chars[i] = r
	}
	return chars, nil
}

// unescapeUpper folds each "1x" pair back into the upper-case letter X.
func unescapeUpper(chars []rune, enc Encoding) (string, error) {
	out := chars[:0]
	for i := 0; i < len(chars); i++ {
		r := chars[i]
		if r == escapeMarker {
			i++
			if i == len(chars) {
				return "", InvalidCharacterValue(lowerSpecialOne, enc)
			}
			if !isLower(chars[i]) {
				v, _ := lowerSpecialValue(chars[i])
				return "", InvalidCharacterValue(v, enc)
			}
			r = toUpper(chars[i])
		}
		out = append(out, r)
	}
	return string(out), nil
}
