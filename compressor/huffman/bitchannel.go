package huffman

import (
	"io"

	"github.com/icza/bitio"
)

// BitReader is the input side of a bit channel.  ReadBits returns io.EOF
// once the underlying stream is exhausted.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// BitWriter is the output side of a bit channel.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriteCloser = (*bitio.Writer)(nil)
)

// NewBitReader returns a BitReader that reads r most significant bit first.
func NewBitReader(r io.Reader) BitReader {
	return bitio.NewReader(r)
}

// BitWriteCloser is a BitWriter whose Close pads the last partial byte with
// zero bits and flushes it.
type BitWriteCloser interface {
	BitWriter
	io.Closer
}

// NewBitWriter returns a BitWriteCloser that writes to w most significant
// bit first.  It does not close w.
func NewBitWriter(w io.Writer) BitWriteCloser {
	return bitio.NewWriter(w)
}
