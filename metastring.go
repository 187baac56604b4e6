package metastring

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/violetpay-org/metastring/internal/codec"
)

// EncodedString is the immutable result of encoding one identifier. It
// carries the packed buffer together with the tag and special characters
// needed to read it back. The zero value is an empty UTF8 string.
type EncodedString struct {
	text         string
	encoding     Encoding
	specialChar1 rune
	specialChar2 rune
	data         []byte // nil for empty text
}

// Text returns the original input. It is kept for inspection only.
func (m EncodedString) Text() string { return m.text }

// Encoding returns the layout of the packed buffer.
func (m EncodedString) Encoding() Encoding { return m.encoding }

// SpecialChar1 returns the character at code 62 of the 64-symbol alphabet.
func (m EncodedString) SpecialChar1() rune { return m.specialChar1 }

// SpecialChar2 returns the character at code 63 of the 64-symbol alphabet.
func (m EncodedString) SpecialChar2() rune { return m.specialChar2 }

// Bytes returns a copy of the packed buffer, or nil for empty text.
func (m EncodedString) Bytes() []byte {
	if m.data == nil {
		return nil
	}
	return bytes.Clone(m.data)
}

// IsEmpty reports whether the value carries the absence marker.
func (m EncodedString) IsEmpty() bool { return m.data == nil }

// Len returns the packed size in bytes.
func (m EncodedString) Len() int { return len(m.data) }

// Slack reports whether the slack flag of a packed buffer is set.
// It is always false for UTF8 and empty values.
func (m EncodedString) Slack() bool {
	if m.encoding == UTF8 || len(m.data) == 0 {
		return false
	}
	return m.data[0]&slackFlag != 0
}

func (m EncodedString) String() string { return m.text }

// Equal reports whether both values decode identically.
func (m EncodedString) Equal(other EncodedString) bool {
	return m.encoding == other.encoding &&
		m.specialChar1 == other.specialChar1 &&
		m.specialChar2 == other.specialChar2 &&
		bytes.Equal(m.data, other.data)
}

// frameVersion is the first byte of the binary framing.
const frameVersion = 1

// maxFramePayload bounds the payload length accepted by ReadFrom.
const maxFramePayload = MaxLength * utf8.UTFMax

var (
	// ErrBadVersion indicates a frame written by an unknown format version.
	ErrBadVersion = errors.New("metastring: unsupported frame version")
	// ErrBadFrame indicates a truncated or inconsistent frame.
	ErrBadFrame = errors.New("metastring: malformed frame")
)

// WriteTo serializes m to w.
// Layout:
//   - 1 byte frame version
//   - 1 byte encoding tag
//   - uvarint special char 1, uvarint special char 2
//   - uvarint payload length, 0 for the absence marker
//   - payload
func (m EncodedString) WriteTo(w io.Writer) (int64, error) {
	hdr := make([]byte, 0, 2+3*binary.MaxVarintLen32)
	hdr = append(hdr, frameVersion, byte(m.encoding))
	hdr = binary.AppendUvarint(hdr, uint64(m.specialChar1))
	hdr = binary.AppendUvarint(hdr, uint64(m.specialChar2))
	hdr = binary.AppendUvarint(hdr, uint64(len(m.data)))

	var n int64
	nn, err := w.Write(hdr)
	n += int64(nn)
	if err != nil {
		return n, err
	}
	nn, err = w.Write(m.data)
	n += int64(nn)
	return n, err
}

// ReadFrom replaces m with the frame read from r. The text is recovered by
// decoding the payload, so a payload that does not decode is rejected with
// the decoder's error. ReadFrom consumes exactly one frame.
func (m *EncodedString) ReadFrom(r io.Reader) (int64, error) {
	br := &byteReader{r: r}
	version, err := br.ReadByte()
	if err != nil {
		return br.n, err
	}
	if version != frameVersion {
		return br.n, ErrBadVersion
	}
	tag, err := br.ReadByte()
	if err != nil {
		return br.n, frameError(err)
	}
	enc := Encoding(tag)
	if !enc.Valid() {
		return br.n, InvalidEncodingFlag(enc)
	}
	s1, err := readRune(br)
	if err != nil {
		return br.n, err
	}
	s2, err := readRune(br)
	if err != nil {
		return br.n, err
	}
	size, err := binary.ReadUvarint(br)
	if err != nil {
		return br.n, frameError(err)
	}
	if size > maxFramePayload {
		return br.n, fmt.Errorf("%w: payload of %d bytes", ErrBadFrame, size)
	}
	var data []byte
	if size > 0 {
		data = make([]byte, size)
		nn, err := io.ReadFull(r, data)
		br.n += int64(nn)
		if err != nil {
			return br.n, frameError(err)
		}
	}
	decoded, err := newEncodedString(enc, s1, s2, data)
	if err != nil {
		return br.n, err
	}
	*m = decoded
	return br.n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m EncodedString) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *EncodedString) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	if _, err := m.ReadFrom(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrBadFrame, r.Len())
	}
	return nil
}

// cborFrame is the CBOR wire form: a 4-element array
// [tag, special1, special2, payload-or-null].
type cborFrame struct {
	_        struct{} `cbor:",toarray"`
	Encoding uint8
	Special1 int32
	Special2 int32
	Data     []byte
}

// MarshalCBOR implements cbor.Marshaler.
func (m EncodedString) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(cborFrame{
		Encoding: uint8(m.encoding),
		Special1: m.specialChar1,
		Special2: m.specialChar2,
		Data:     m.data,
	})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (m *EncodedString) UnmarshalCBOR(data []byte) error {
	var frame cborFrame
	if err := codec.Unmarshal(data, &frame); err != nil {
		return fmt.Errorf("%w: %v", ErrBadFrame, err)
	}
	enc := Encoding(frame.Encoding)
	if !enc.Valid() {
		return InvalidEncodingFlag(enc)
	}
	if !utf8.ValidRune(frame.Special1) || !utf8.ValidRune(frame.Special2) {
		return fmt.Errorf("%w: invalid special character", ErrBadFrame)
	}
	if len(frame.Data) == 0 {
		frame.Data = nil
	}
	decoded, err := newEncodedString(enc, frame.Special1, frame.Special2, frame.Data)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

// newEncodedString rebuilds a value from its persisted parts.
func newEncodedString(enc Encoding, s1, s2 rune, data []byte) (EncodedString, error) {
	text, err := NewDecoder(s1, s2).Decode(data, enc)
	if err != nil {
		return EncodedString{}, err
	}
	return EncodedString{
		text:         text,
		encoding:     enc,
		specialChar1: s1,
		specialChar2: s2,
		data:         data,
	}, nil
}

func readRune(br *byteReader) (rune, error) {
	v, err := binary.ReadUvarint(br)
	if err != nil {
		return 0, frameError(err)
	}
	if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
		return 0, fmt.Errorf("%w: invalid special character %d", ErrBadFrame, v)
	}
	return rune(v), nil
}

func frameError(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %v", ErrBadFrame, err)
}

// byteReader reads one byte at a time so ReadFrom never consumes past the
// end of its frame.
type byteReader struct {
	r   io.Reader
	n   int64
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	b.n++
	return b.buf[0], nil
}
