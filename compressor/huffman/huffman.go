package huffman

import (
	"bytes"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// CompressionWriter buffers everything written to it and writes the
// compressed stream to the underlying writer on Close.
type CompressionWriter struct {
	w        io.Writer
	content  bytes.Buffer
	isClosed bool
}

type decompressionCore struct {
	isInputBufferClosed bool
	lock                sync.Mutex
	inputBuffer         bytes.Buffer
	outputBuffer        bytes.Buffer
}

// DecompressionWriter accepts a compressed stream.  Close decodes it.
type DecompressionWriter struct {
	core *decompressionCore
}

// DecompressionReader yields the bytes decoded by its DecompressionWriter.
type DecompressionReader struct {
	core *decompressionCore
}

var errWriterClosed = errors.New("huffman: write to closed writer")

func NewCompressionWriter(writer io.Writer) io.WriteCloser {
	return &CompressionWriter{w: writer}
}

func (cw *CompressionWriter) Write(data []byte) (int, error) {
	if cw.isClosed {
		return 0, errWriterClosed
	}
	return cw.content.Write(data)
}

func (cw *CompressionWriter) Close() error {
	if cw.isClosed {
		return nil
	}
	cw.isClosed = true
	err := Compress(cw.w, bytes.NewReader(cw.content.Bytes()))
	cw.content.Reset()
	return err
}

// NewDecompressionReaderAndWriter returns the two ends of an in-memory
// decompressor.  Compressed bytes go into the writer; once the writer is
// closed, the reader yields the original bytes.  If decoding fails, Close
// returns the error and the reader yields nothing.
func NewDecompressionReaderAndWriter() (io.ReadCloser, io.WriteCloser) {
	core := new(decompressionCore)
	return &DecompressionReader{core: core}, &DecompressionWriter{core: core}
}

func (dw *DecompressionWriter) Write(data []byte) (int, error) {
	dw.core.lock.Lock()
	defer dw.core.lock.Unlock()
	if dw.core.isInputBufferClosed {
		return 0, errWriterClosed
	}
	return dw.core.inputBuffer.Write(data)
}

func (dw *DecompressionWriter) Close() error {
	dw.core.lock.Lock()
	defer dw.core.lock.Unlock()
	if dw.core.isInputBufferClosed {
		return nil
	}
	dw.core.isInputBufferClosed = true
	var decoded bytes.Buffer
	err := Decompress(&decoded, &dw.core.inputBuffer)
	dw.core.inputBuffer.Reset()
	if err != nil {
		return err
	}
	_, err = decoded.WriteTo(&dw.core.outputBuffer)
	return err
}

func (dr *DecompressionReader) Read(data []byte) (int, error) {
	dr.core.lock.Lock()
	defer dr.core.lock.Unlock()
	if !dr.core.isInputBufferClosed {
		return 0, errors.New("huffman: read before compressed input was closed")
	}
	return dr.core.outputBuffer.Read(data)
}

func (dr *DecompressionReader) Close() error {
	dr.core.lock.Lock()
	defer dr.core.lock.Unlock()
	dr.core.outputBuffer.Reset()
	return nil
}
