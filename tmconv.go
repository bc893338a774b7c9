package tmconv

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tmsim/tmconv/internal/compiler"
	"github.com/tmsim/tmconv/internal/logging"
	"github.com/tmsim/tmconv/pkg/domain"
)

// Version is the current tmconv release.
const Version = "1.1.0"

// ReadError wraps an I/O failure that occurred while streaming lines
// from the source, keeping it distinguishable from parse and
// missing-declaration failures.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read next line: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Converter is the high-level entry point for the tmconv library.
// It wraps the internal compiler and provides a simplified API for
// consumers.
type Converter struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithLogger injects a custom logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert streams lines from r and assembles a configuration.
// Lines are surface-trimmed before classification. Read failures surface
// as *ReadError; a source without an alphabet or tape declaration fails
// with domain.ErrMissingAlphabet or domain.ErrMissingTape.
func (c *Converter) Convert(r io.Reader) (*domain.Configuration, error) {
	comp := compiler.New()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if err := comp.ConsumeLine(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Err: err}
	}

	cfg, err := comp.Finish()
	if err != nil {
		return nil, err
	}

	c.logger.Debug("conversion complete",
		"lines", comp.Lines(),
		"commands", len(cfg.Commands),
		"alphabet", cfg.Alphabet,
	)
	return cfg, nil
}

// ConvertString converts in-memory source text.
func (c *Converter) ConvertString(source string) (*domain.Configuration, error) {
	return c.Convert(strings.NewReader(source))
}

// ConvertFile opens and converts a source file.
func (c *Converter) ConvertFile(path string) (*domain.Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()

	return c.Convert(f)
}
