// Package metastring packs short identifier strings into 5 or 6 bits per
// character.
//
// # Overview
//
// Class names, field names and symbolic keys are mostly drawn from a small
// alphabet: lower-case letters, a few digits, '_' and perhaps '.' or '$'.
// Storing them as UTF-8 spends 8 bits per character. metastring picks the
// cheapest lossless layout for each string and bit-packs it:
//
//   - LowerSpecial: a-z, '0', '_', '3', '1' at 5 bits per character
//   - LowerUpperDigitSpecial: a-z, A-Z, 0-9 and two configurable special
//     characters at 6 bits per character
//   - FirstToLowerSpecial: LowerSpecial with an upper-case first letter
//   - AllToLowerSpecial: LowerSpecial where each upper-case letter costs
//     two symbols
//   - UTF8: raw passthrough for anything else, including non-ASCII text
//
// # When NOT to Use metastring
//
// It is not a general compressor: there is no entropy coding and no shared
// dictionary, and non-ASCII text is never packed. It does not intern or
// cache strings; storing the result is the caller's concern.
//
// # Binary Layout
//
// The top bit of byte 0 is a slack flag. Codes follow from bit 1, most
// significant bit first, and the buffer is ceil((n*w+1)/8) bytes long.
// There is no length field: when the trailing padding is at least one
// character wide the slack flag is set and the decoder reads one character
// less. Empty text has no buffer at all.
//
// # Basic Usage
//
//	enc := metastring.NewEncoder('.', '_')
//	ms, err := enc.Encode("user_id")
//	if err != nil {
//	    // ErrUnsupportedEncoding: fall back, e.g. enc.EncodeAs(s, metastring.UTF8)
//	}
//	dec := metastring.NewDecoder('.', '_')
//	s, _ := dec.Decode(ms.Bytes(), ms.Encoding())
//
// Encode only produces LowerSpecial output; other selections fail with
// ErrUnsupportedEncoding. The Decoder reads all five layouts, and EncodeAs
// produces any of them when the caller names the tag explicitly.
//
// The special character pair is not stored in the packed buffer. Producer
// and consumer must agree on it; WriteTo and MarshalCBOR persist the pair
// next to the buffer for that reason.
//
// # Errors
//
// Every failure is an *Error carrying an ErrorCode. Use errors.Is with the
// Err* sentinels or CodeOf to tell them apart. No call returns partial
// output.
package metastring
