package metastring

// Statistics summarises one input string for encoding selection.
// It is computed per call and never cached.
type Statistics struct {
	Length     int // characters (runes), not bytes
	DigitCount int
	UpperCount int

	// CanLowerSpecialEncoded: every character is in the 30-symbol alphabet.
	CanLowerSpecialEncoded bool
	// CanLowerUpperDigitSpecialEncoded: every character is alphanumeric or
	// one of the two special characters.
	CanLowerUpperDigitSpecialEncoded bool
}

// ComputeStatistics scans text once. The empty string is trivially
// encodable by both alphabets.
func ComputeStatistics(text string, specialChar1, specialChar2 rune) Statistics {
	stats := Statistics{
		CanLowerSpecialEncoded:           true,
		CanLowerUpperDigitSpecialEncoded: true,
	}
	alpha := alphabet{special1: specialChar1, special2: specialChar2}
	for _, r := range text {
		stats.Length++
		if stats.CanLowerUpperDigitSpecialEncoded && !alpha.contains(r) {
			stats.CanLowerUpperDigitSpecialEncoded = false
		}
		if stats.CanLowerSpecialEncoded && !inLowerSpecial(r) {
			stats.CanLowerSpecialEncoded = false
		}
		if isDigit(r) {
			stats.DigitCount++
		}
		if isUpper(r) {
			stats.UpperCount++
		}
	}
	return stats
}
