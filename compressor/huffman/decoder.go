package huffman

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Decompress reads a stream produced by Compress from src and writes the
// original bytes to dst.  Decoding stops at the first error; nothing after
// the error is written.
func Decompress(dst io.Writer, src io.Reader) error {
	r := NewBitReader(src)
	magic, err := r.ReadBits(BitsPerInt)
	if err != nil {
		if isEndOfStream(err) {
			return errors.Wrap(ErrBadMagic, "stream shorter than magic number")
		}
		return errors.Wrap(err, "huffman: read magic")
	}
	if magic != Magic {
		return errors.Wrapf(ErrBadMagic, "got %#08x, expected %#08x", magic, uint64(Magic))
	}

	root, err := ReadHeader(r)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(dst)
	if err := decodeBody(bw, r, root); err != nil {
		return err
	}
	return errors.Wrap(bw.Flush(), "huffman: write output")
}

// decodeBody walks the tree one bit at a time, starting over at the root
// after every literal, until the leaf of PseudoEOF is reached.
func decodeBody(w io.ByteWriter, r BitReader, root *Node) error {
	if root.IsLeaf() {
		return errors.Wrap(ErrMalformedHeader, "tree has no internal node")
	}
	var decoded int64
	current := root
	for {
		bit, err := r.ReadBits(1)
		if err != nil {
			if isEndOfStream(err) {
				return errors.Wrapf(ErrTruncatedStream, "no end-of-stream code after %d bytes", decoded)
			}
			return errors.Wrap(err, "huffman: read body")
		}
		if bit == 0 {
			current = current.Left
		} else {
			current = current.Right
		}
		if !current.IsLeaf() {
			continue
		}
		if current.Symbol == PseudoEOF {
			return nil
		}
		if err := w.WriteByte(byte(current.Symbol)); err != nil {
			return errors.Wrap(err, "huffman: write output")
		}
		decoded++
		current = root
	}
}
