package domain

import "errors"

// ErrMissingAlphabet is returned when the source never declared an alphabet.
var ErrMissingAlphabet = errors.New("no alphabet was provided")

// ErrMissingTape is returned when the source never declared a tape.
var ErrMissingTape = errors.New("no tape was provided")
