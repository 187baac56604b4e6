package metastring

// Packed layout, MSB first:
//
//	bit 0 (0x80 of byte 0): slack flag
//	bits 1..n*w:            n codes of w bits each, each code MSB first
//	remaining bits:         zero padding
//
// The buffer holds ceil((n*w+1)/8) bytes and stores no length. The slack
// flag is set when the padding is at least w bits wide, which would
// otherwise be read back as an extra character.
const slackFlag = 0x80

// PackedLen returns the byte length of n characters packed at bitsPerChar.
func PackedLen(n, bitsPerChar int) int {
	return (n*bitsPerChar + 1 + 7) / 8
}

// pack writes codes into a fresh buffer. Each code must fit bitsPerChar.
func pack(codes []byte, bitsPerChar int) []byte {
	totalBits := len(codes)*bitsPerChar + 1
	out := make([]byte, PackedLen(len(codes), bitsPerChar))
	pos := 1
	for _, code := range codes {
		for j := bitsPerChar - 1; j >= 0; j-- {
			if code&(1<<j) != 0 {
				out[pos>>3] |= 0x80 >> (pos & 7)
			}
			pos++
		}
	}
	if totalBits+bitsPerChar <= len(out)*8 {
		out[0] |= slackFlag
	}
	return out
}

// unpack reads back the codes written by pack. data must be non-empty.
func unpack(data []byte, bitsPerChar int) []byte {
	usable := len(data)*8 - 1
	if data[0]&slackFlag != 0 {
		usable -= bitsPerChar
	}
	n := usable / bitsPerChar
	codes := make([]byte, n)
	pos := 1
	for i := range n {
		var v byte
		for range bitsPerChar {
			v <<= 1
			if data[pos>>3]&(0x80>>(pos&7)) != 0 {
				v |= 1
			}
			pos++
		}
		codes[i] = v
	}
	return codes
}
