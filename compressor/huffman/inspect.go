package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Summary describes the tree and code sizes Compress would produce for an
// input, without producing the stream.
type Summary struct {
	Frequencies FrequencyTable
	Codes       CodeTable
	Leaves      int
	Depth       int
	HeaderBits  int64
	BodyBits    int64
}

// Inspect counts the symbols of src and builds the tree and code table for
// them.
func Inspect(src io.Reader) (*Summary, error) {
	freq, err := CountFrequencies(NewBitReader(src))
	if err != nil {
		return nil, err
	}
	root := BuildTree(freq)
	s := &Summary{
		Frequencies: freq,
		Codes:       BuildCodeTable(root),
		Leaves:      root.Leaves(),
		Depth:       root.Depth(),
		HeaderBits:  HeaderBits(root),
	}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		s.BodyBits += int64(freq[symbol]) * int64(s.Codes[symbol].Size)
	}
	return s, nil
}

// CompressedSize returns the length in bytes of the stream Compress would
// write, padding included.
func (s *Summary) CompressedSize() int64 {
	return (BitsPerInt + s.HeaderBits + s.BodyBits + 7) / 8
}

// Dump writes a programmer-readable listing of the summary to the given
// writer.
func (s *Summary) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Summary{\n")
	fmt.Fprintf(&buf, "\tLeaves = %d\n", s.Leaves)
	fmt.Fprintf(&buf, "\tDepth = %d\n", s.Depth)
	fmt.Fprintf(&buf, "\tHeaderBits = %d\n", s.HeaderBits)
	fmt.Fprintf(&buf, "\tBodyBits = %d\n", s.BodyBits)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		hc := s.Codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tSymbol(%d) = {%d, %s}\n", symbol, s.Frequencies[symbol], hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
