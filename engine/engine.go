package engine

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"

	"github.com/FitrahHaque/huffman-engine/compressor/huffman"
)

var Engines = [...]string{
	"huffman",
}

type compressor struct {
	compressionEngine string
	compressedContent []byte
}

// writers and readers stream through memory; fileCompressors and
// fileDecompressors work on open files.
var writers = map[string]func(io.Writer) io.WriteCloser{
	"huffman": huffman.NewCompressionWriter,
}

var readers = map[string]func() (io.ReadCloser, io.WriteCloser){
	"huffman": huffman.NewDecompressionReaderAndWriter,
}

var fileCompressors = map[string]func(io.Writer, io.ReadSeeker) error{
	"huffman": huffman.Compress,
}

var fileDecompressors = map[string]func(io.Writer, io.Reader) error{
	"huffman": huffman.Decompress,
}

func (c *compressor) write(content []byte) (int, error) {
	newWriter, ok := writers[c.compressionEngine]
	if !ok {
		return 0, errors.Errorf("unknown compression engine %q", c.compressionEngine)
	}
	var b bytes.Buffer
	w := newWriter(&b)
	if _, err := w.Write(content); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	c.compressedContent = b.Bytes()
	return len(c.compressedContent), nil
}

func (c *compressor) read() ([]byte, error) {
	newReaderAndWriter, ok := readers[c.compressionEngine]
	if !ok {
		return nil, errors.Errorf("unknown compression engine %q", c.compressionEngine)
	}
	r, w := newReaderAndWriter()
	defer r.Close()
	if _, err := w.Write(c.compressedContent); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// CompressFiles writes <file><ext> for every file.
func CompressFiles(files []string, cfg Config) error {
	compress, ok := fileCompressors[cfg.Algorithm]
	if !ok {
		return errors.Errorf("unknown compression engine %q", cfg.Algorithm)
	}
	bar := startProgress(files, cfg)
	defer finishProgress(bar)
	for _, file := range files {
		if err := compressFile(compress, file, file+cfg.OutputExtension, cfg); err != nil {
			return errors.Wrapf(err, "compress %s", file)
		}
		addProgress(bar, file)
	}
	return nil
}

func compressFile(compress func(io.Writer, io.ReadSeeker) error, filePath, outputFileName string, cfg Config) error {
	in, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer in.Close()

	if cfg.Verbose {
		if err := logSummary(in, cfg.Logger); err != nil {
			return err
		}
		if _, err := in.Seek(0, io.SeekStart); err != nil {
			return err
		}
	}

	cfg.Logger.Debugf("[ engine.compressFile ] compressing %s into %s", filePath, outputFileName)
	if err := writeAtomically(outputFileName, func(w io.Writer) error {
		return compress(w, in)
	}); err != nil {
		return err
	}
	reportSizes(filePath, outputFileName, cfg.Logger)
	return nil
}

// DecompressFiles restores every file.  The output name is the file name
// without the configured extension, or the file name plus ".unhuf" when the
// extension does not match.
func DecompressFiles(files []string, cfg Config) error {
	decompress, ok := fileDecompressors[cfg.Algorithm]
	if !ok {
		return errors.Errorf("unknown compression engine %q", cfg.Algorithm)
	}
	bar := startProgress(files, cfg)
	defer finishProgress(bar)
	for _, file := range files {
		outputFileName := decompressedName(file, cfg.OutputExtension)
		cfg.Logger.Debugf("[ engine.DecompressFiles ] decompressing %s into %s", file, outputFileName)
		if err := decompressFile(decompress, file, outputFileName); err != nil {
			return errors.Wrapf(err, "decompress %s", file)
		}
		cfg.Logger.Infof("Decompressed %s into %s", file, outputFileName)
		addProgress(bar, file)
	}
	return nil
}

func decompressFile(decompress func(io.Writer, io.Reader) error, filePath, outputFileName string) error {
	in, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer in.Close()
	return writeAtomically(outputFileName, func(w io.Writer) error {
		return decompress(w, in)
	})
}

func decompressedName(file, ext string) string {
	if strings.HasSuffix(file, ext) && filepath.Base(file) != ext {
		return strings.TrimSuffix(file, ext)
	}
	return file + decompressedExtension
}

// writeAtomically writes into a temporary file next to name and renames it
// to name only if produce succeeds.
func writeAtomically(name string, produce func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := produce(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}

func logSummary(in io.Reader, logger Logger) error {
	summary, err := huffman.Inspect(in)
	if err != nil {
		return err
	}
	var b strings.Builder
	if _, err := summary.Dump(&b); err != nil {
		return err
	}
	logger.Debugf("[ engine.logSummary ] %s", strings.TrimSuffix(b.String(), "\n"))
	return nil
}

func reportSizes(original, compressed string, logger Logger) {
	originalInfo, err := os.Stat(original)
	if err != nil {
		return
	}
	compressedInfo, err := os.Stat(compressed)
	if err != nil {
		return
	}
	logger.Infof("Original size (in bytes): %v", originalInfo.Size())
	logger.Infof("Compressed size (in bytes): %v", compressedInfo.Size())
	if originalInfo.Size() > 0 {
		logger.Infof("Compression ratio: %.2f%%", float64(compressedInfo.Size())/float64(originalInfo.Size())*100)
	}
}

func startProgress(files []string, cfg Config) *pb.ProgressBar {
	if !cfg.Progress {
		return nil
	}
	var total int64
	for _, file := range files {
		if info, err := os.Stat(file); err == nil {
			total += info.Size()
		}
	}
	bar := pb.New64(total)
	bar.Set(pb.Bytes, true)
	bar.SetWriter(cfg.ProgressOutput)
	return bar.Start()
}

func addProgress(bar *pb.ProgressBar, file string) {
	if bar == nil {
		return
	}
	if info, err := os.Stat(file); err == nil {
		bar.Add64(info.Size())
	}
}

func finishProgress(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Finish()
	}
}
