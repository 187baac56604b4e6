package metastring

// Report summarises how a corpus of identifiers encodes.
type Report struct {
	Inputs int

	// Selected counts the tag SelectEncoding picked, indexed by Encoding.
	Selected [AllToLowerSpecial + 1]int

	// Rejected counts inputs Encode refused, by error code.
	Rejected map[ErrorCode]int

	RawBytes      int // UTF-8 size of every input
	AcceptedBytes int // UTF-8 size of inputs Encode accepted
	PackedBytes   int // packed size of inputs Encode accepted

	// FullMatrixBytes is the size of the corpus if every input were packed
	// with its selected tag through EncodeAs, falling back to raw UTF-8
	// where the layout cannot hold the text.
	FullMatrixBytes int
}

// Accepted returns the number of inputs Encode packed.
func (r Report) Accepted() int {
	n := r.Inputs
	for _, c := range r.Rejected {
		n -= c
	}
	return n
}

// Ratio returns packed over raw size for the accepted inputs, or 0 when
// nothing was accepted.
func (r Report) Ratio() float64 {
	if r.AcceptedBytes == 0 {
		return 0
	}
	return float64(r.PackedBytes) / float64(r.AcceptedBytes)
}

// FullMatrixRatio returns FullMatrixBytes over RawBytes, or 0 for an empty
// corpus.
func (r Report) FullMatrixRatio() float64 {
	if r.RawBytes == 0 {
		return 0
	}
	return float64(r.FullMatrixBytes) / float64(r.RawBytes)
}

// Survey runs selection and encoding over inputs with one encoder.
func Survey(inputs []string, specialChar1, specialChar2 rune) Report {
	var (
		enc    = NewEncoder(specialChar1, specialChar2)
		report = Report{Rejected: make(map[ErrorCode]int)}
	)
	for _, text := range inputs {
		report.Inputs++
		report.RawBytes += len(text)

		selected := enc.ComputeEncoding(text)
		report.Selected[selected]++

		if selected != LowerSpecial {
			report.Rejected[ErrCodeUnsupportedEncoding]++
		} else if packed, err := enc.EncodeAs(text, selected); err != nil {
			report.Rejected[CodeOf(err)]++
		} else {
			report.AcceptedBytes += len(text)
			report.PackedBytes += packed.Len()
			report.FullMatrixBytes += packed.Len()
			continue
		}

		if packed, err := enc.EncodeAs(text, selected); err == nil && packed.Len() < len(text) {
			report.FullMatrixBytes += packed.Len()
		} else {
			report.FullMatrixBytes += len(text)
		}
	}
	return report
}
