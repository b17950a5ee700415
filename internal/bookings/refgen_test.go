package bookings

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesValidReference(t *testing.T) {
	gen := NewReferenceGenerator(5)
	never := func(ctx context.Context, ref string) (bool, error) { return false, nil }

	ref, err := gen.Generate(context.Background(), never)
	require.NoError(t, err)

	assert.Len(t, ref, 6)
	for _, ch := range ref {
		assert.True(t, strings.ContainsRune(referenceAlphabet, ch), "unexpected character %q", ch)
	}
}

func TestGenerateAvoidsAmbiguousCharacters(t *testing.T) {
	gen := NewReferenceGenerator(5)
	never := func(ctx context.Context, ref string) (bool, error) { return false, nil }

	for i := 0; i < 200; i++ {
		ref, err := gen.Generate(context.Background(), never)
		require.NoError(t, err)
		assert.NotContains(t, ref, "0")
		assert.NotContains(t, ref, "O")
		assert.NotContains(t, ref, "1")
		assert.NotContains(t, ref, "I")
		assert.NotContains(t, ref, "L")
	}
}

func TestGenerateRetriesOnCollision(t *testing.T) {
	gen := NewReferenceGenerator(5)

	calls := 0
	// First two candidates collide, third is free.
	exists := func(ctx context.Context, ref string) (bool, error) {
		calls++
		return calls <= 2, nil
	}

	ref, err := gen.Generate(context.Background(), exists)
	require.NoError(t, err)
	assert.Len(t, ref, 6)
	assert.Equal(t, 3, calls)
}

func TestGenerateExhaustsAfterMaxAttempts(t *testing.T) {
	gen := NewReferenceGenerator(5)

	calls := 0
	always := func(ctx context.Context, ref string) (bool, error) {
		calls++
		return true, nil
	}

	_, err := gen.Generate(context.Background(), always)
	assert.ErrorIs(t, err, ErrReferenceGenerationExhausted)
	assert.Equal(t, 5, calls)
}

func TestGeneratePropagatesLookupError(t *testing.T) {
	gen := NewReferenceGenerator(5)
	failing := func(ctx context.Context, ref string) (bool, error) {
		return false, assert.AnError
	}

	_, err := gen.Generate(context.Background(), failing)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewReferenceGeneratorDefaultsAttempts(t *testing.T) {
	gen := NewReferenceGenerator(0)

	calls := 0
	always := func(ctx context.Context, ref string) (bool, error) {
		calls++
		return true, nil
	}

	_, err := gen.Generate(context.Background(), always)
	assert.ErrorIs(t, err, ErrReferenceGenerationExhausted)
	assert.Equal(t, 5, calls)
}
