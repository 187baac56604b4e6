package metastring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeVector(t *testing.T) {
	ms, err := Encode("ab", '.', '_')
	require.NoError(t, err)

	assert.Equal(t, LowerSpecial, ms.Encoding())
	assert.Equal(t, []byte{0x80, 0x20}, ms.Bytes())
	assert.True(t, ms.Slack())

	got, err := Decode(ms.Bytes(), LowerSpecial, '.', '_')
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}

func TestEncodeEmpty(t *testing.T) {
	ms, err := NewEncoder('.', '_').Encode("")
	require.NoError(t, err)

	assert.Nil(t, ms.Bytes())
	assert.True(t, ms.IsEmpty())
	assert.False(t, ms.Slack())
	assert.Equal(t, LowerSpecial, ms.Encoding())
	assert.Equal(t, '.', ms.SpecialChar1())
	assert.Equal(t, '_', ms.SpecialChar2())
}

func TestEncodeRoundtrip(t *testing.T) {
	enc := NewEncoder('.', '_')
	dec := NewDecoder('.', '_')
	inputs := []string{
		"a",
		"z",
		"hello",
		"user_id",
		"abcdefghijklmnopqrstuvwxyz",
		"0_31",
		"snake_case_name_0",
		strings.Repeat("ab_", 100),
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ms, err := enc.Encode(input)
			require.NoError(t, err)
			assert.Equal(t, input, ms.Text())
			assert.Equal(t, PackedLen(len(input), 5), ms.Len())

			got, err := dec.Decode(ms.Bytes(), ms.Encoding())
			require.NoError(t, err)
			assert.Equal(t, input, got)
		})
	}
}

func TestEncodeLengthLimit(t *testing.T) {
	enc := NewEncoder('.', '_')

	ms, err := enc.Encode(strings.Repeat("a", MaxLength))
	require.NoError(t, err)
	assert.Equal(t, PackedLen(MaxLength, 5), ms.Len())

	got, err := NewDecoder('.', '_').Decode(ms.Bytes(), LowerSpecial)
	require.NoError(t, err)
	assert.Len(t, got, MaxLength)

	_, err = enc.Encode(strings.Repeat("a", MaxLength+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStringTooLong)
	assert.Equal(t, ErrCodeStringTooLong, CodeOf(err))
}

func TestEncodeUnsupportedEncoding(t *testing.T) {
	enc := NewEncoder('.', '_')
	tests := []struct {
		input    string
		selected Encoding
	}{
		{"Hello", FirstToLowerSpecial},
		{"abc123", LowerUpperDigitSpecial},
		{"helloWorld", AllToLowerSpecial},
		{"café", UTF8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.selected, enc.ComputeEncoding(tt.input))

			ms, err := enc.Encode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedEncoding)
			assert.Contains(t, err.Error(), tt.selected.String())
			assert.True(t, ms.IsEmpty())
		})
	}
}

func TestEncodeAs(t *testing.T) {
	enc := NewEncoder('.', '_')
	dec := NewDecoder('.', '_')
	tests := []struct {
		input    string
		encoding Encoding
		bits     int
	}{
		{"hello", LowerSpecial, 5},
		{"abc123", LowerUpperDigitSpecial, 6},
		{"java.lang.String_1", LowerUpperDigitSpecial, 6},
		{"Hello", FirstToLowerSpecial, 5},
		{"Xyz_id", FirstToLowerSpecial, 5},
		{"helloWorld", AllToLowerSpecial, 5},
		{"Hello_World", AllToLowerSpecial, 5},
		{"café", UTF8, 0},
		{"with space", UTF8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.encoding.String()+"/"+tt.input, func(t *testing.T) {
			ms, err := enc.EncodeAs(tt.input, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.encoding, ms.Encoding())
			assert.Equal(t, tt.bits, tt.encoding.BitsPerChar())

			got, err := dec.Decode(ms.Bytes(), ms.Encoding())
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestEncodeAsAllToLowerSize(t *testing.T) {
	// Each upper-case letter costs one extra 5-bit symbol.
	ms, err := NewEncoder('.', '_').EncodeAs("helloWorld", AllToLowerSpecial)
	require.NoError(t, err)
	assert.Equal(t, PackedLen(11, 5), ms.Len())
}

func TestEncodeAsUnsupportedCharacter(t *testing.T) {
	enc := NewEncoder('.', '_')
	tests := []struct {
		input    string
		encoding Encoding
	}{
		{"a.b", LowerSpecial},
		{"Hello", LowerSpecial},
		{"a-b", LowerUpperDigitSpecial},
		{"hello", FirstToLowerSpecial},
		{"HeLlo", FirstToLowerSpecial},
		{"Hello.world", FirstToLowerSpecial},
		{"a1B", AllToLowerSpecial},
		{"hello.World", AllToLowerSpecial},
	}

	for _, tt := range tests {
		t.Run(tt.encoding.String()+"/"+tt.input, func(t *testing.T) {
			_, err := enc.EncodeAs(tt.input, tt.encoding)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedCharacter)
		})
	}
}

func TestEncodeAsInvalidEncoding(t *testing.T) {
	enc := NewEncoder('.', '_')
	for _, input := range []string{"", "abc"} {
		_, err := enc.EncodeAs(input, Encoding(9))
		assert.ErrorIs(t, err, ErrInvalidEncodingFlag)
	}
}

func TestEncodeAsEmptyKeepsTag(t *testing.T) {
	ms, err := NewEncoder('.', '_').EncodeAs("", LowerUpperDigitSpecial)
	require.NoError(t, err)
	assert.True(t, ms.IsEmpty())
	assert.Equal(t, LowerUpperDigitSpecial, ms.Encoding())
}

func BenchmarkEncode(b *testing.B) {
	inputs := []struct {
		name string
		text string
	}{
		{"short", "user_id"},
		{"medium", "abstract_singleton_proxy_factory_bean"},
		{"long", strings.Repeat("field_name_", 100)},
	}

	for _, input := range inputs {
		enc := NewEncoder('.', '_')
		b.Run(input.name, func(b *testing.B) {
			b.SetBytes(int64(len(input.text)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := enc.Encode(input.text); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
