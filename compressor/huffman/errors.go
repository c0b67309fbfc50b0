package huffman

import (
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrBadMagic is returned when a stream does not start with Magic.
	ErrBadMagic = errors.New("huffman: bad magic number")

	// ErrMalformedHeader is returned when the tree header cannot be
	// reconstructed.
	ErrMalformedHeader = errors.New("huffman: malformed tree header")

	// ErrTruncatedStream is returned when the body ends before the code of
	// PseudoEOF has been decoded.
	ErrTruncatedStream = errors.New("huffman: truncated stream")
)

// isEndOfStream reports whether err is the bit channel's end-of-stream
// signal rather than a real I/O failure.
func isEndOfStream(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
