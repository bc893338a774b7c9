package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmsim/tmconv/pkg/domain"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("Complete Configuration", func(t *testing.T) {
		b := domain.NewBuilder()
		b.AddCommand(domain.Command{State: 0, NextState: 1, ReadingChar: "a", PlaceChar: "b", NextMove: domain.MoveRight})
		b.SetAlphabet("ab")
		b.SetTape("*aab")

		cfg, err := b.Build()
		require.NoError(t, err)
		require.Len(t, cfg.Commands, 1)
		assert.Equal(t, "ab", cfg.Alphabet)
		assert.Equal(t, "*aab", cfg.Tape)
	})

	t.Run("Missing Alphabet", func(t *testing.T) {
		b := domain.NewBuilder()
		b.SetTape("*a")

		cfg, err := b.Build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, domain.ErrMissingAlphabet)
	})

	t.Run("Missing Tape", func(t *testing.T) {
		b := domain.NewBuilder()
		b.SetAlphabet("ab")

		cfg, err := b.Build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, domain.ErrMissingTape)
	})

	t.Run("Missing Both Reports Alphabet First", func(t *testing.T) {
		_, err := domain.NewBuilder().Build()
		assert.ErrorIs(t, err, domain.ErrMissingAlphabet)
	})

	t.Run("Last Declaration Wins", func(t *testing.T) {
		b := domain.NewBuilder()
		b.SetAlphabet("ab")
		b.SetAlphabet("cd")
		b.SetTape("*ab")
		b.SetTape("*cd")

		cfg, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, "cd", cfg.Alphabet)
		assert.Equal(t, "*cd", cfg.Tape)
	})

	t.Run("Duplicate Commands Are Kept", func(t *testing.T) {
		cmd := domain.Command{State: 1, NextState: 1, ReadingChar: "x", PlaceChar: "x", NextMove: domain.MoveStop}
		b := domain.NewBuilder()
		b.AddCommand(cmd)
		b.AddCommand(cmd)
		b.SetAlphabet("x")
		b.SetTape("*x")

		cfg, err := b.Build()
		require.NoError(t, err)
		assert.Len(t, cfg.Commands, 2)
	})

	t.Run("No Commands Yields Empty Slice", func(t *testing.T) {
		b := domain.NewBuilder()
		b.SetAlphabet("a")
		b.SetTape("*a")

		cfg, err := b.Build()
		require.NoError(t, err)
		assert.NotNil(t, cfg.Commands)
		assert.Empty(t, cfg.Commands)
	})
}

func TestDecodeMove(t *testing.T) {
	tests := []struct {
		marker byte
		want   string
	}{
		{'R', domain.MoveRight},
		{'L', domain.MoveLeft},
		{'S', domain.MoveStop},
		{'X', domain.MoveStop}, // permissive fallback
		{'r', domain.MoveStop}, // case sensitive
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.DecodeMove(tt.marker), "marker %q", tt.marker)
	}
}
