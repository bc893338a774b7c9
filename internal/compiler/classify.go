package compiler

import "regexp"

// LineKind identifies the shape of one source line.
type LineKind int

const (
	// LineIgnored marks a line matching none of the recognized shapes.
	// Such lines are skipped silently; blank lines and comments fall here.
	LineIgnored LineKind = iota
	// LineCommand is a transition rule: q<digits>(<char>) -> q<digits>(<char>)<R|L|S>.
	LineCommand
	// LineAlphabet is an alphabet declaration: alphabet: (<chars>).
	LineAlphabet
	// LineTape is a tape declaration: tape: (*<chars>).
	LineTape
)

var lineKindNames = map[LineKind]string{
	LineIgnored:  "ignored",
	LineCommand:  "command",
	LineAlphabet: "alphabet",
	LineTape:     "tape",
}

func (k LineKind) String() string {
	if name, ok := lineKindNames[k]; ok {
		return name
	}
	return "unknown"
}

var (
	commandPattern  = regexp.MustCompile(`^q\d+[(].[)] -> q\d+[(].[)](R|L|S)$`)
	alphabetPattern = regexp.MustCompile(`^alphabet: *[(].*[)]$`)
	tapePattern     = regexp.MustCompile(`^tape: *[(][*].*[)]$`)
)

// Classify determines which of the three recognized shapes a trimmed
// source line matches. The shapes are mutually exclusive; anything else
// is LineIgnored. Classification is a pure decision with no side effects.
func Classify(line string) LineKind {
	switch {
	case commandPattern.MatchString(line):
		return LineCommand
	case alphabetPattern.MatchString(line):
		return LineAlphabet
	case tapePattern.MatchString(line):
		return LineTape
	default:
		return LineIgnored
	}
}
