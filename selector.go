package metastring

// SelectEncoding picks the cheapest lossless layout for text given its
// statistics. Rules are evaluated in order and the first match wins:
//
//  1. every char in the 30-symbol alphabet: LowerSpecial
//  2. every char in the 64-symbol alphabet:
//     a. any digit: LowerUpperDigitSpecial
//     b. a single upper-case letter in first position: FirstToLowerSpecial
//     c. (len+upper)*5 < len*6: AllToLowerSpecial
//     d. otherwise LowerUpperDigitSpecial
//  3. anything else: UTF8
//
// The comparison in 2c is exact integer arithmetic so that every producer
// arrives at the same tag.
func SelectEncoding(stats Statistics, text string) Encoding {
	if stats.CanLowerSpecialEncoded {
		return LowerSpecial
	}
	if !stats.CanLowerUpperDigitSpecialEncoded {
		return UTF8
	}
	if stats.DigitCount != 0 {
		return LowerUpperDigitSpecial
	}
	if stats.UpperCount == 1 && len(text) > 0 && isUpper(rune(text[0])) {
		return FirstToLowerSpecial
	}
	if (stats.Length+stats.UpperCount)*lowerSpecialBits < stats.Length*lowerUpperDigitSpecialBits {
		return AllToLowerSpecial
	}
	return LowerUpperDigitSpecial
}
