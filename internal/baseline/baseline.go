// Package baseline measures general-purpose compressors on an identifier
// corpus so packed sizes can be put in context.
package baseline

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Sizes holds the compressed size of one corpus under each baseline.
type Sizes struct {
	Raw  int
	LZ4  int // block mode; equals Raw when the block is incompressible
	Zstd int // level 3
}

// zstdEncoder is reused across calls. zstd.Encoder is safe for
// concurrent use through EncodeAll.
var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("baseline: zstd encoder initialization failed: " + err.Error())
	}
}

// Measure compresses the newline-joined inputs as a single block with
// each compressor.
func Measure(inputs []string) (Sizes, error) {
	corpus := join(inputs)
	sizes := Sizes{Raw: len(corpus)}
	if len(corpus) == 0 {
		return sizes, nil
	}

	n, err := lz4Size(corpus)
	if err != nil {
		return Sizes{}, err
	}
	sizes.LZ4 = n
	sizes.Zstd = len(zstdEncoder.EncodeAll(corpus, nil))
	return sizes, nil
}

func lz4Size(data []byte) (int, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return 0, fmt.Errorf("lz4 compress: %w", err)
	}
	// CompressBlock returns 0 for incompressible input.
	if written == 0 {
		return len(data), nil
	}
	return written, nil
}

func join(inputs []string) []byte {
	size := 0
	for _, s := range inputs {
		size += len(s) + 1
	}
	out := make([]byte, 0, size)
	for i, s := range inputs {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, s...)
	}
	return out
}
