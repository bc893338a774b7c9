package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmsim/tmconv/internal/presentation/tui"
	"github.com/tmsim/tmconv/pkg/domain"
)

func TestSummary(t *testing.T) {
	cfg := &domain.Configuration{
		Commands: []domain.Command{
			{State: 0, NextState: 1, ReadingChar: "a", PlaceChar: "b", NextMove: domain.MoveRight},
			{State: 1, NextState: 1, ReadingChar: "b", PlaceChar: "b", NextMove: domain.MoveStop},
		},
		Alphabet: "ab",
		Tape:     "*aab",
	}

	md := tui.Summary(cfg)
	assert.Contains(t, md, "**Alphabet:** `ab`")
	assert.Contains(t, md, "**Tape:** `*aab`")
	assert.Contains(t, md, "**Commands:** 2")
	assert.Contains(t, md, "| q0 | `a` | `b` | q1 | Right |")
	assert.Contains(t, md, "| q1 | `b` | `b` | q1 | Stop |")
}

func TestSummary_NoCommands(t *testing.T) {
	md := tui.Summary(&domain.Configuration{Alphabet: "a", Tape: "*a"})
	assert.Contains(t, md, "**Commands:** 0")
	assert.NotContains(t, md, "| State |")
}
