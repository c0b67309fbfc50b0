package engine

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fatih/color"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Result is the outcome of benchmarking one file.
type Result struct {
	File           string
	OriginalSize   int
	CompressedSize int
	ZstdSize       int // Baseline size with zstd at its default level
	Checksum       uint64
	Verified       bool // Round trip reproduced the original checksum
	Elapsed        time.Duration
}

// Ratio returns CompressedSize as a percentage of OriginalSize.
func (r Result) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.CompressedSize) / float64(r.OriginalSize) * 100
}

// Benchmark compresses and decompresses every file in memory and checks the
// round trip against an xxhash64 digest of the original.  A failed round
// trip is recorded in its Result and reported as an error once all files
// have been processed.
func Benchmark(files []string, cfg Config) ([]Result, error) {
	if _, ok := writers[cfg.Algorithm]; !ok {
		return nil, errors.Errorf("unknown compression engine %q", cfg.Algorithm)
	}
	baseline, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, errors.Wrap(err, "zstd baseline")
	}
	defer baseline.Close()

	bar := startProgress(files, cfg)
	defer finishProgress(bar)

	results := make([]Result, 0, len(files))
	var failed int
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return results, errors.Wrapf(err, "benchmark %s", file)
		}
		result, err := benchmarkContent(cfg.Algorithm, content, baseline)
		if err != nil {
			return results, errors.Wrapf(err, "benchmark %s", file)
		}
		result.File = file
		if !result.Verified {
			failed++
			cfg.Logger.Errorf("[ engine.Benchmark ] round trip of %s does not match the original", file)
		}
		cfg.Logger.Debugf("[ engine.Benchmark ] %s: %d -> %d bytes in %v", file, result.OriginalSize, result.CompressedSize, result.Elapsed)
		results = append(results, result)
		addProgress(bar, file)
	}
	if failed > 0 {
		return results, errors.Errorf("%d of %d files failed round-trip verification", failed, len(files))
	}
	return results, nil
}

func benchmarkContent(algorithm string, content []byte, baseline *zstd.Encoder) (Result, error) {
	start := time.Now()
	file := compressor{compressionEngine: algorithm}
	if _, err := file.write(content); err != nil {
		return Result{}, err
	}
	decoded, err := file.read()
	if err != nil {
		return Result{}, err
	}
	checksum := xxhash.Sum64(content)
	return Result{
		OriginalSize:   len(content),
		CompressedSize: len(file.compressedContent),
		ZstdSize:       len(baseline.EncodeAll(content, nil)),
		Checksum:       checksum,
		Verified:       len(decoded) == len(content) && xxhash.Sum64(decoded) == checksum,
		Elapsed:        time.Since(start),
	}, nil
}

// Report writes results as a table.
func Report(w io.Writer, results []Result) error {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tORIGINAL\tHUFFMAN\tRATIO\tZSTD\tXXHASH\tVERIFIED\tTIME")
	for _, r := range results {
		verified := ok("yes")
		if !r.Verified {
			verified = bad("no")
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f%%\t%d\t%016x\t%s\t%v\n",
			r.File, r.OriginalSize, r.CompressedSize, r.Ratio(), r.ZstdSize, r.Checksum, verified, r.Elapsed.Round(time.Microsecond))
	}
	return tw.Flush()
}
