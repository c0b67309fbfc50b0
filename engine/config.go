package engine

import (
	"io"
	"os"
)

const (
	DefaultAlgorithm       = "huffman"
	DefaultOutputExtension = ".huf"

	// decompressedExtension is appended when a compressed file does not
	// carry the configured extension.
	decompressedExtension = ".unhuf"
)

// Config holds the settings shared by every engine command.
type Config struct {
	Algorithm       string    // Name of the compressor, one of Engines
	OutputExtension string    // Appended to compressed files, stripped on decompression
	Verbose         bool      // Log code tables and per-file details
	Progress        bool      // Show a progress bar over bytes processed
	ProgressOutput  io.Writer // Where the progress bar is drawn (default os.Stderr)
	Logger          Logger    // Default is a colored logger on os.Stderr
}

// Option is a functional option for configuring the engine.
type Option func(*Config)

// WithAlgorithm selects the compressor by name.
func WithAlgorithm(name string) Option {
	return func(c *Config) {
		c.Algorithm = name
	}
}

// WithOutputExtension sets the extension of compressed files.
// An empty extension falls back to DefaultOutputExtension.
func WithOutputExtension(ext string) Option {
	return func(c *Config) {
		c.OutputExtension = ext
	}
}

// WithVerbose enables debug logging.
func WithVerbose(verbose bool) Option {
	return func(c *Config) {
		c.Verbose = verbose
	}
}

// WithProgress enables the progress bar, drawn on w.
func WithProgress(enabled bool, w io.Writer) Option {
	return func(c *Config) {
		c.Progress = enabled
		c.ProgressOutput = w
	}
}

// WithLogger replaces the default logger.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Algorithm:       DefaultAlgorithm,
		OutputExtension: DefaultOutputExtension,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = DefaultAlgorithm
	}
	if cfg.OutputExtension == "" {
		cfg.OutputExtension = DefaultOutputExtension
	}
	if cfg.ProgressOutput == nil {
		cfg.ProgressOutput = os.Stderr
	}
	if cfg.Logger == nil {
		cfg.Logger = NewLogger(os.Stderr, cfg.Verbose)
	}
	return cfg
}
