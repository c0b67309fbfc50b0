package huffman

import (
	"io"

	"github.com/pkg/errors"
)

// Compress reads all of src, writes its compressed form to dst, and leaves
// src positioned at its end.  src is read twice: once to count symbols and
// once, after seeking back to the start, to encode them.
func Compress(dst io.Writer, src io.ReadSeeker) error {
	freq, err := CountFrequencies(NewBitReader(src))
	if err != nil {
		return err
	}
	root := BuildTree(freq)
	codes := BuildCodeTable(root)

	w := NewBitWriter(dst)
	if err := w.WriteBits(Magic, BitsPerInt); err != nil {
		return errors.Wrap(err, "huffman: write magic")
	}
	if err := WriteHeader(w, root); err != nil {
		return err
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "huffman: rewind input")
	}
	if err := encodeBody(w, NewBitReader(src), &codes); err != nil {
		return err
	}
	return errors.Wrap(w.Close(), "huffman: flush output")
}

// encodeBody writes the code of every chunk of r, followed by the code of
// PseudoEOF.
func encodeBody(w BitWriter, r BitReader, codes *CodeTable) error {
	for {
		chunk, err := r.ReadBits(BitsPerWord)
		if err != nil {
			if isEndOfStream(err) {
				break
			}
			return errors.Wrap(err, "huffman: read input")
		}
		if err := writeCode(w, codes, Symbol(chunk)); err != nil {
			return err
		}
	}
	return writeCode(w, codes, PseudoEOF)
}

func writeCode(w BitWriter, codes *CodeTable, symbol Symbol) error {
	hc := codes.Encode(symbol)
	if hc.Size == 0 {
		return errors.Errorf("huffman: symbol %d has no code, input changed between passes", symbol)
	}
	return errors.Wrap(w.WriteBits(hc.Bits, hc.Size), "huffman: write body")
}
