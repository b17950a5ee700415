package bookings

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

// referenceAlphabet omits 0/O, 1/I/L and other lookalikes so references
// survive being read over the phone or scrawled on paper.
const (
	referenceAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	referenceLength   = 6
)

// ReferenceExistsFunc answers whether a candidate reference is already taken.
type ReferenceExistsFunc func(ctx context.Context, ref string) (bool, error)

// ReferenceGenerator mints short public booking codes, retrying on collision
// up to maxAttempts before giving up.
type ReferenceGenerator struct {
	maxAttempts int
}

func NewReferenceGenerator(maxAttempts int) *ReferenceGenerator {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &ReferenceGenerator{maxAttempts: maxAttempts}
}

// Generate returns a reference that did not exist at check time. The unique
// constraint on bookings.reference is the backstop for the remaining race.
func (g *ReferenceGenerator) Generate(ctx context.Context, exists ReferenceExistsFunc) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		ref, err := randomReference()
		if err != nil {
			return "", fmt.Errorf("reference generation: %w", err)
		}

		taken, err := exists(ctx, ref)
		if err != nil {
			return "", fmt.Errorf("reference existence check: %w", err)
		}
		if !taken {
			return ref, nil
		}
	}
	return "", ErrReferenceGenerationExhausted
}

func randomReference() (string, error) {
	buf := make([]byte, referenceLength)
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = referenceAlphabet[n.Int64()]
	}
	return string(buf), nil
}
