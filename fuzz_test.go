package metastring

import (
	"bytes"
	"testing"
)

func FuzzEncodeRoundtrip(f *testing.F) {
	f.Add("user_id")
	f.Add("Hello")
	f.Add("createdAt")
	f.Add("Hello.World_2")
	f.Add("café")
	f.Add("")
	f.Add("a")
	f.Add("abcdefghijklmnopqrstuvwxyz0_31")
	f.Add("null\x00byte")
	f.Add("\xff\xfe")

	enc := NewEncoder('.', '_')
	dec := NewDecoder('.', '_')
	f.Fuzz(func(t *testing.T, input string) {
		if ms, err := enc.Encode(input); err == nil {
			if ms.Encoding() != LowerSpecial {
				t.Fatalf("Encode produced %s", ms.Encoding())
			}
		}

		for e := UTF8; e <= AllToLowerSpecial; e++ {
			ms, err := enc.EncodeAs(input, e)
			if err != nil {
				continue
			}
			got, err := dec.Decode(ms.Bytes(), e)
			if err != nil {
				t.Fatalf("%s: decode: %v", e, err)
			}
			if got != input {
				t.Fatalf("%s: roundtrip mismatch: %q != %q", e, got, input)
			}
		}

		// The escape layouts can be selected for text whose specials lie
		// outside the 30-symbol alphabet. The other selections always fit.
		selected := enc.ComputeEncoding(input)
		if selected == FirstToLowerSpecial || selected == AllToLowerSpecial {
			return
		}
		if _, err := enc.EncodeAs(input, selected); err != nil && CodeOf(err) != ErrCodeStringTooLong {
			t.Fatalf("selected %s cannot hold %q: %v", selected, input, err)
		}
	})
}

// FuzzDecode checks that arbitrary buffers never panic the decoder.
func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x80, 0x20}, uint8(LowerSpecial))
	f.Add([]byte{0x78}, uint8(LowerSpecial))
	f.Add([]byte{0xf7, 0x60}, uint8(AllToLowerSpecial))
	f.Add([]byte{0x67, 0xe8}, uint8(LowerUpperDigitSpecial))
	f.Add([]byte{}, uint8(7))

	dec := NewDecoder('.', '_')
	f.Fuzz(func(t *testing.T, data []byte, tag uint8) {
		_, _ = dec.Decode(data, Encoding(tag))
	})
}

// FuzzUnmarshalBinary checks that accepted frames survive a second trip.
func FuzzUnmarshalBinary(f *testing.F) {
	f.Add([]byte{1, 1, '.', '_', 2, 0x80, 0x20})
	f.Add([]byte{1, 0, 0, 0, 0})
	f.Add([]byte{2})

	f.Fuzz(func(t *testing.T, data []byte) {
		var ms EncodedString
		if err := ms.UnmarshalBinary(data); err != nil {
			return
		}
		out, err := ms.MarshalBinary()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back EncodedString
		if err := back.UnmarshalBinary(out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !back.Equal(ms) || back.Text() != ms.Text() {
			t.Fatalf("second trip mismatch")
		}
		if !bytes.Equal(back.Bytes(), ms.Bytes()) {
			t.Fatalf("payload mismatch")
		}
	})
}
