package huffman

import (
	"github.com/pkg/errors"
)

// WriteHeader writes the tree below root in pre-order: a 0 bit for every
// internal node followed by its left and right subtrees, and a 1 bit for
// every leaf followed by its symbol in BitsPerSymbol bits.
func WriteHeader(w BitWriter, root *Node) error {
	if root.IsLeaf() {
		if err := w.WriteBits(1, 1); err != nil {
			return errors.Wrap(err, "huffman: write header")
		}
		if err := w.WriteBits(uint64(root.Symbol), BitsPerSymbol); err != nil {
			return errors.Wrap(err, "huffman: write header")
		}
		return nil
	}
	if err := w.WriteBits(0, 1); err != nil {
		return errors.Wrap(err, "huffman: write header")
	}
	if err := WriteHeader(w, root.Left); err != nil {
		return err
	}
	return WriteHeader(w, root.Right)
}

// HeaderBits returns the number of bits WriteHeader emits for root.
func HeaderBits(root *Node) int64 {
	if root.IsLeaf() {
		return 1 + BitsPerSymbol
	}
	return 1 + HeaderBits(root.Left) + HeaderBits(root.Right)
}

// ReadHeader reads a tree written by WriteHeader.  Leaf weights are not
// stored in the header and come back as zero.
func ReadHeader(r BitReader) (*Node, error) {
	return readNode(r, 0)
}

func readNode(r BitReader, depth int) (*Node, error) {
	// A tree over NumSymbols leaves is never deeper than NumSymbols-1.
	if depth >= NumSymbols {
		return nil, errors.Wrapf(ErrMalformedHeader, "tree deeper than %d", NumSymbols-1)
	}
	bit, err := r.ReadBits(1)
	if err != nil {
		return nil, headerReadError(err, "control bit")
	}
	if bit == 1 {
		value, err := r.ReadBits(BitsPerSymbol)
		if err != nil {
			return nil, headerReadError(err, "leaf value")
		}
		symbol := Symbol(value)
		if !symbol.IsValid() {
			return nil, errors.Wrapf(ErrMalformedHeader, "leaf value %d out of range", value)
		}
		return NewLeaf(symbol, 0), nil
	}
	left, err := readNode(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readNode(r, depth+1)
	if err != nil {
		return nil, err
	}
	return NewInternal(left, right), nil
}

func headerReadError(err error, expecting string) error {
	if isEndOfStream(err) {
		return errors.Wrapf(ErrMalformedHeader, "end of stream while reading %s", expecting)
	}
	return errors.Wrap(err, "huffman: read header")
}
