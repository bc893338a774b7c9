package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tmsim/tmconv/pkg/domain"
)

// ParseCommand decodes a line already confirmed to match the command
// shape into a transition rule.
//
// The line is split at the transition arrow; each half drops its leading
// state marker (q) and splits at the opening parenthesis into a state
// number and a symbol. The right half additionally carries the move
// marker after its closing parenthesis.
func ParseCommand(line string) (domain.Command, error) {
	left, right, found := strings.Cut(line, "->")
	if !found {
		return domain.Command{}, fmt.Errorf("missing transition arrow in %q", line)
	}

	state, reading, err := parseHalf(left)
	if err != nil {
		return domain.Command{}, fmt.Errorf("left side of %q: %w", line, err)
	}

	nextState, rest, err := splitHalf(right)
	if err != nil {
		return domain.Command{}, fmt.Errorf("right side of %q: %w", line, err)
	}

	// rest holds "<char>)<move>".
	symbolPart, movePart, _ := strings.Cut(rest, ")")
	place, err := firstRune(symbolPart)
	if err != nil {
		return domain.Command{}, fmt.Errorf("right side of %q: %w", line, err)
	}

	move := domain.MoveStop
	if len(movePart) > 0 {
		move = domain.DecodeMove(movePart[0])
	}

	return domain.Command{
		State:       state,
		NextState:   nextState,
		ReadingChar: reading,
		PlaceChar:   place,
		NextMove:    move,
	}, nil
}

// parseHalf decodes "q<digits>(<char>)" into its state number and symbol.
func parseHalf(half string) (int, string, error) {
	state, rest, err := splitHalf(half)
	if err != nil {
		return 0, "", err
	}
	symbol, err := firstRune(strings.TrimSuffix(rest, ")"))
	if err != nil {
		return 0, "", err
	}
	return state, symbol, nil
}

// splitHalf strips the state marker and splits at the opening parenthesis,
// returning the parsed state number and the unparsed remainder.
func splitHalf(half string) (int, string, error) {
	half = strings.TrimPrefix(strings.TrimSpace(half), "q")
	numPart, rest, found := strings.Cut(half, "(")
	if !found {
		return 0, "", fmt.Errorf("missing symbol parenthesis in %q", half)
	}
	state, err := strconv.Atoi(strings.TrimSpace(numPart))
	if err != nil {
		return 0, "", fmt.Errorf("invalid state number %q: %w", numPart, err)
	}
	return state, rest, nil
}

func firstRune(s string) (string, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return "", fmt.Errorf("missing symbol")
	}
	return string(r), nil
}
