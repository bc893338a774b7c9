package compiler

import "fmt"

// ParseError reports a command line that matched the transition shape
// but could not be decoded. It carries the 1-based line number and the
// underlying cause.
type ParseError struct {
	Line  int
	Cause error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Cause)
	}
	return e.Cause.Error()
}

func (e *ParseError) Unwrap() error { return e.Cause }
