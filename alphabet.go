package metastring

// Alphabet sizes. LowerSpecial fills 30 of the 32 five-bit codes;
// LowerUpperDigitSpecial uses all 64 six-bit codes.
const (
	LowerSpecialAlphabetSize           = 30
	LowerUpperDigitSpecialAlphabetSize = 64
)

// LowerSpecial code layout:
//
//	0..25: 'a'..'z'
//	26: '0'  27: '_'  28: '3'  29: '1'
const (
	lowerSpecialZero       = 26
	lowerSpecialUnderscore = 27
	lowerSpecialThree      = 28
	lowerSpecialOne        = 29
)

// LowerUpperDigitSpecial code layout:
//
//	0..25: 'a'..'z'  26..51: 'A'..'Z'  52..61: '0'..'9'
//	62: special char 1  63: special char 2
const (
	upperBase    = 26
	digitBase    = 52
	specialOne   = 62
	specialTwo   = 63
	escapeMarker = '1' // AllToLowerSpecial prefix for an upper-case letter
)

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func toLower(r rune) rune { return r - 'A' + 'a' }
func toUpper(r rune) rune { return r - 'a' + 'A' }

// inLowerSpecial reports whether r belongs to the 30-symbol alphabet.
func inLowerSpecial(r rune) bool {
	return isLower(r) || r == '0' || r == '_' || r == '3' || r == '1'
}

// lowerSpecialValue maps a character to its 5-bit code.
func lowerSpecialValue(r rune) (byte, bool) {
	switch {
	case isLower(r):
		return byte(r - 'a'), true
	case r == '0':
		return lowerSpecialZero, true
	case r == '_':
		return lowerSpecialUnderscore, true
	case r == '3':
		return lowerSpecialThree, true
	case r == '1':
		return lowerSpecialOne, true
	}
	return 0, false
}

// lowerSpecialChar maps a 5-bit code back to its character.
func lowerSpecialChar(v byte) (rune, bool) {
	switch {
	case v < upperBase:
		return 'a' + rune(v), true
	case v == lowerSpecialZero:
		return '0', true
	case v == lowerSpecialUnderscore:
		return '_', true
	case v == lowerSpecialThree:
		return '3', true
	case v == lowerSpecialOne:
		return '1', true
	}
	return 0, false
}

// alphabet is the 64-symbol table parameterised by the two special characters.
type alphabet struct {
	special1 rune
	special2 rune
}

func (a alphabet) contains(r rune) bool {
	return isLower(r) || isUpper(r) || isDigit(r) || r == a.special1 || r == a.special2
}

// value maps a character to its 6-bit code. Letters and digits win over
// a special character that collides with them.
func (a alphabet) value(r rune) (byte, bool) {
	switch {
	case isLower(r):
		return byte(r - 'a'), true
	case isUpper(r):
		return upperBase + byte(r-'A'), true
	case isDigit(r):
		return digitBase + byte(r-'0'), true
	case r == a.special1:
		return specialOne, true
	case r == a.special2:
		return specialTwo, true
	}
	return 0, false
}

// char maps a 6-bit code back to its character.
func (a alphabet) char(v byte) (rune, bool) {
	switch {
	case v < upperBase:
		return 'a' + rune(v), true
	case v < digitBase:
		return 'A' + rune(v-upperBase), true
	case v < specialOne:
		return '0' + rune(v-digitBase), true
	case v == specialOne:
		return a.special1, true
	case v == specialTwo:
		return a.special2, true
	}
	return 0, false
}
