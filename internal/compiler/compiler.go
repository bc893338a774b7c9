package compiler

import (
	"github.com/tmsim/tmconv/pkg/domain"
)

// Compiler folds a sequence of source lines into a machine configuration.
//
// It performs no I/O itself: the caller feeds it already-read, trimmed
// lines in file order via ConsumeLine and finalizes with Finish. The
// zero value is not usable; use New.
type Compiler struct {
	builder *domain.Builder
	lineNo  int
}

// New creates a compiler with an empty configuration under construction.
func New() *Compiler {
	return &Compiler{builder: domain.NewBuilder()}
}

// ConsumeLine classifies one trimmed line and dispatches it.
// Unrecognized lines are skipped silently; that is a deliberate
// permissive-parsing policy, not an error.
func (c *Compiler) ConsumeLine(line string) error {
	c.lineNo++
	switch Classify(line) {
	case LineCommand:
		cmd, err := ParseCommand(line)
		if err != nil {
			// The shape was pattern-verified, so this is unreachable in
			// practice, but a clear error beats a silent panic.
			return &ParseError{Line: c.lineNo, Cause: err}
		}
		c.builder.AddCommand(cmd)
	case LineAlphabet:
		c.builder.SetAlphabet(ParseAlphabet(line))
	case LineTape:
		c.builder.SetTape(ParseTape(line))
	case LineIgnored:
		// skip
	}
	return nil
}

// Lines reports how many lines have been consumed.
func (c *Compiler) Lines() int {
	return c.lineNo
}

// Finish validates and returns the assembled configuration.
// It fails with domain.ErrMissingAlphabet or domain.ErrMissingTape when
// end of input was reached without the corresponding declaration.
func (c *Compiler) Finish() (*domain.Configuration, error) {
	return c.builder.Build()
}
