package compiler

import (
	"slices"
	"strings"
)

// captureParens extracts the text between the first opening parenthesis
// and the trailing closing one. Every trailing parenthesis is stripped,
// so a declaration like "alphabet: (ab))" captures "ab".
func captureParens(line string) string {
	_, rest, _ := strings.Cut(line, "(")
	return strings.TrimRight(rest, ")")
}

// ParseAlphabet decodes an alphabet declaration into its normalized
// content: sorted by natural rune order with duplicates removed. The
// result is deterministic regardless of the order symbols were written.
func ParseAlphabet(line string) string {
	chars := []rune(captureParens(line))
	slices.Sort(chars)
	chars = slices.Compact(chars)
	return string(chars)
}

// ParseTape decodes a tape declaration into its literal content,
// preserving order and duplicates. The leading * marker is part of the
// captured content and is kept verbatim; downstream tooling relies on it
// as the head-position marker.
func ParseTape(line string) string {
	return captureParens(line)
}
