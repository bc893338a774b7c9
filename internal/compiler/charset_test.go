package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmsim/tmconv/internal/compiler"
)

func TestParseAlphabet(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"Already Sorted", "alphabet: (abcd)", "abcd"},
		{"Unsorted With Duplicates", "alphabet: (badcab)", "abcd"},
		{"Single Symbol", "alphabet: (x)", "x"},
		{"Empty", "alphabet: ()", ""},
		{"All Duplicates", "alphabet: (aaaa)", "a"},
		{"Digits And Letters", "alphabet: (1a0b)", "01ab"},
		{"No Space After Colon", "alphabet:(ba)", "ab"},
		{"Extra Trailing Parens Stripped", "alphabet: (ab))", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compiler.ParseAlphabet(tt.line))
		})
	}
}

func TestParseAlphabet_OrderIndependent(t *testing.T) {
	// Normalization must make declaration order irrelevant.
	assert.Equal(t,
		compiler.ParseAlphabet("alphabet: (badcab)"),
		compiler.ParseAlphabet("alphabet: (abcd)"),
	)
}

func TestParseTape(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"Marker Retained", "tape: (*aab)", "*aab"},
		{"Duplicates And Order Preserved", "tape: (*abba)", "*abba"},
		{"Marker Only", "tape: (*)", "*"},
		{"Extra Trailing Parens Stripped", "tape: (*ab))", "*ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compiler.ParseTape(tt.line))
		})
	}
}
