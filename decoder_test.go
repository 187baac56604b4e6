package metastring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAbsent(t *testing.T) {
	dec := NewDecoder('.', '_')
	for _, enc := range []Encoding{UTF8, LowerSpecial, LowerUpperDigitSpecial,
		FirstToLowerSpecial, AllToLowerSpecial, Encoding(42)} {
		got, err := dec.Decode(nil, enc)
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = dec.Decode([]byte{}, enc)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestDecodeInvalidEncodingFlag(t *testing.T) {
	for _, enc := range []Encoding{5, 42, 255} {
		got, err := Decode([]byte{0x80, 0x20}, enc, '.', '_')
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEncodingFlag)
		assert.Empty(t, got)
	}
}

func TestDecodeInvalidCharacterValue(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		enc  Encoding
	}{
		{"code 30", []byte{0x78}, LowerSpecial},
		{"code 31", []byte{0x7c}, LowerSpecial},
		{"code 30 after a", []byte{0x83, 0xc0}, LowerSpecial},
		{"first to lower", []byte{0x78}, FirstToLowerSpecial},
		{"all to lower", []byte{0x7c}, AllToLowerSpecial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDecoder('.', '_').Decode(tt.data, tt.enc)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCharacterValue)
			assert.Empty(t, got)
		})
	}
}

func TestDecodeLowerUpperDigitSpecialAllCodes(t *testing.T) {
	codes := make([]byte, LowerUpperDigitSpecialAlphabetSize)
	for i := range codes {
		codes[i] = byte(i)
	}
	got, err := NewDecoder('.', '$').Decode(pack(codes, 6), LowerUpperDigitSpecial)
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.$", got)
}

func TestDecodeSpecialCharMismatch(t *testing.T) {
	ms, err := NewEncoder('.', '_').EncodeAs("a.b_c", LowerUpperDigitSpecial)
	require.NoError(t, err)

	// A different pair yields different characters, not an error.
	got, err := NewDecoder('-', '$').Decode(ms.Bytes(), LowerUpperDigitSpecial)
	require.NoError(t, err)
	assert.Equal(t, "a-b$c", got)
}

func TestDecodeNonASCIISpecialChars(t *testing.T) {
	ms, err := NewEncoder('é', '·').EncodeAs("caféA·1", LowerUpperDigitSpecial)
	require.NoError(t, err)
	assert.Equal(t, PackedLen(7, 6), ms.Len())

	got, err := NewDecoder('é', '·').Decode(ms.Bytes(), LowerUpperDigitSpecial)
	require.NoError(t, err)
	assert.Equal(t, "caféA·1", got)
}

func TestDecodeFirstToLowerSpecial(t *testing.T) {
	// "hello" and "Hello" share a buffer; the tag restores the capital.
	data := []byte{0x9c, 0x8b, 0x5b, 0x80}
	dec := NewDecoder('.', '_')

	got, err := dec.Decode(data, LowerSpecial)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = dec.Decode(data, FirstToLowerSpecial)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
}

func TestDecodeFirstToLowerSpecialNonLetter(t *testing.T) {
	// A leading '_' has no upper-case form and is left as is.
	got, err := Decode(pack([]byte{27, 0}, 5), FirstToLowerSpecial, '.', '_')
	require.NoError(t, err)
	assert.Equal(t, "_a", got)
}

func TestDecodeAllToLowerSpecial(t *testing.T) {
	dec := NewDecoder('.', '_')
	tests := []struct {
		codes []byte
		want  string
	}{
		{[]byte{29, 0}, "A"},
		{[]byte{0, 29, 1}, "aB"},
		{[]byte{29, 25, 29, 25, 27}, "ZZ_"},
		{[]byte{0, 1, 2}, "abc"},
	}
	for _, tt := range tests {
		got, err := dec.Decode(pack(tt.codes, 5), AllToLowerSpecial)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestDecodeAllToLowerSpecialBadEscape(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"dangling", []byte{0x74}},           // "1"
		{"not a letter", []byte{0xf7, 0x60}}, // "1_"
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, AllToLowerSpecial, '.', '_')
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCharacterValue)
			assert.Empty(t, got)
		})
	}
}

func TestDecodeUTF8(t *testing.T) {
	got, err := Decode([]byte("café"), UTF8, '.', '_')
	require.NoError(t, err)
	assert.Equal(t, "café", got)
}

func BenchmarkDecode(b *testing.B) {
	inputs := []struct {
		name string
		text string
	}{
		{"short", "user_id"},
		{"medium", "abstract_singleton_proxy_factory_bean"},
		{"long", strings.Repeat("field_name_", 100)},
	}

	for _, input := range inputs {
		ms, err := Encode(input.text, '.', '_')
		if err != nil {
			b.Fatal(err)
		}
		data := ms.Bytes()
		dec := NewDecoder('.', '_')
		b.Run(input.name, func(b *testing.B) {
			b.SetBytes(int64(len(input.text)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := dec.Decode(data, LowerSpecial); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
