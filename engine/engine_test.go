package engine

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/FitrahHaque/huffman-engine/compressor/huffman"
)

func writeTestFiles(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	random := make([]byte, 4096)
	rand.New(rand.NewSource(5)).Read(random)

	contents := map[string][]byte{
		filepath.Join(dir, "empty.txt"):  {},
		filepath.Join(dir, "gettysburg"): []byte("Four score and seven years ago our fathers brought forth on this continent, a new nation.\n"),
		filepath.Join(dir, "random.bin"): random,
	}
	for name, content := range contents {
		if err := os.WriteFile(name, content, 0644); err != nil {
			t.Fatalf("%v", err)
		}
	}
	return contents
}

func keys(m map[string][]byte) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestCompressFiles_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	contents := writeTestFiles(t, dir)

	var logs bytes.Buffer
	cfg := NewConfig(WithLogger(NewLogger(&logs, true)), WithVerbose(true), WithProgress(true, io.Discard))
	if err := CompressFiles(keys(contents), cfg); err != nil {
		t.Fatalf("CompressFiles failed: %v", err)
	}

	var compressed []string
	for name := range contents {
		if err := os.Remove(name); err != nil {
			t.Fatalf("%v", err)
		}
		compressed = append(compressed, name+DefaultOutputExtension)
	}
	if err := DecompressFiles(compressed, cfg); err != nil {
		t.Fatalf("DecompressFiles failed: %v", err)
	}

	for name, expect := range contents {
		actual, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("%v", err)
		}
		if !bytes.Equal(expect, actual) {
			t.Errorf("%s: round trip mismatch: expect %d bytes, actual %d bytes", name, len(expect), len(actual))
		}
	}

	for _, want := range []string{"Summary{", "Compression ratio", "Decompressed"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("expected log output to contain %q", want)
		}
	}
}

func TestDecompressFiles_Corrupt(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "bad.huf")
	if err := os.WriteFile(name, []byte("definitely not huffman"), 0644); err != nil {
		t.Fatalf("%v", err)
	}

	cfg := NewConfig(WithLogger(NewLogger(io.Discard, false)))
	err := DecompressFiles([]string{name}, cfg)
	if !errors.Is(err, huffman.ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the input to remain, found %v", names)
	}
}

func TestDecompressedName(t *testing.T) {
	type testRow struct {
		file   string
		expect string
	}

	testData := [...]testRow{
		{file: "a.txt.huf", expect: "a.txt"},
		{file: "dir/a.huf", expect: "dir/a"},
		{file: "a.bin", expect: "a.bin.unhuf"},
		{file: "dir/.huf", expect: "dir/.huf.unhuf"},
	}
	for _, row := range testData {
		if actual := decompressedName(row.file, ".huf"); actual != row.expect {
			t.Errorf("%s: expect %s, actual %s", row.file, row.expect, actual)
		}
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	cfg := NewConfig(WithAlgorithm("lzw"), WithLogger(NewLogger(io.Discard, false)))
	if err := CompressFiles(nil, cfg); err == nil {
		t.Errorf("expected CompressFiles to reject an unknown algorithm")
	}
	if err := DecompressFiles(nil, cfg); err == nil {
		t.Errorf("expected DecompressFiles to reject an unknown algorithm")
	}
	if _, err := Benchmark(nil, cfg); err == nil {
		t.Errorf("expected Benchmark to reject an unknown algorithm")
	}
}

func TestBenchmark(t *testing.T) {
	dir := t.TempDir()
	contents := writeTestFiles(t, dir)
	files := keys(contents)

	cfg := NewConfig(WithLogger(NewLogger(io.Discard, false)))
	results, err := Benchmark(files, cfg)
	if err != nil {
		t.Fatalf("Benchmark failed: %v", err)
	}
	if len(results) != len(files) {
		t.Fatalf("expected %d results, got %d", len(files), len(results))
	}
	for _, r := range results {
		if !r.Verified {
			t.Errorf("%s: round trip not verified", r.File)
		}
		if r.OriginalSize != len(contents[r.File]) {
			t.Errorf("%s: expect original size %d, actual %d", r.File, len(contents[r.File]), r.OriginalSize)
		}
		if r.CompressedSize == 0 {
			t.Errorf("%s: empty compressed output", r.File)
		}
	}

	var out strings.Builder
	if err := Report(&out, results); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	for _, file := range files {
		if !strings.Contains(out.String(), file) {
			t.Errorf("report is missing %s", file)
		}
	}
}

func TestCompressor_WriteRead(t *testing.T) {
	content := []byte("abracadabra")
	c := compressor{compressionEngine: "huffman"}
	if _, err := c.write(content); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	decoded, err := c.read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(content, decoded) {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", content, decoded)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(WithOutputExtension(""), WithAlgorithm(""))
	if cfg.OutputExtension != DefaultOutputExtension {
		t.Errorf("expect extension %q, actual %q", DefaultOutputExtension, cfg.OutputExtension)
	}
	if cfg.Algorithm != DefaultAlgorithm {
		t.Errorf("expect algorithm %q, actual %q", DefaultAlgorithm, cfg.Algorithm)
	}
	if cfg.Logger == nil || cfg.ProgressOutput == nil {
		t.Errorf("expected a default logger and progress output")
	}
}

func TestLogger_Verbosity(t *testing.T) {
	var quiet, loud bytes.Buffer
	NewLogger(&quiet, false).Debugf("hidden %d", 1)
	NewLogger(&loud, true).Debugf("shown %d", 2)
	if quiet.Len() != 0 {
		t.Errorf("expected no debug output, got %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "shown 2") {
		t.Errorf("expected debug output, got %q", loud.String())
	}
}
