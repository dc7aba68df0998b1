package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

const (
	referenceAttempts = 10
	referenceDigits   = "0123456789"
	referenceLetters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var errReferenceSpaceExhausted = errors.New("could not draw an unused transaction reference")

// GenerateReference draws a merchant reference shaped TX-dddd-ddd-LL
func GenerateReference() string {
	var b strings.Builder
	b.Grow(14)
	b.WriteString("TX-")
	writeRandom(&b, referenceDigits, 4)
	b.WriteByte('-')
	writeRandom(&b, referenceDigits, 3)
	b.WriteByte('-')
	writeRandom(&b, referenceLetters, 2)
	return b.String()
}

func writeRandom(b *strings.Builder, alphabet string, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
}

// uniqueReference draws references until one is not yet stored. A reference
// is assigned once, before the first insert, and never regenerated.
func (uc *PaymentUC) uniqueReference(ctx context.Context) (string, error) {
	for i := 0; i < referenceAttempts; i++ {
		ref := uc.newRef()
		exists, err := uc.repo.ReferenceExists(ctx, ref)
		if err != nil {
			return "", fmt.Errorf("failed to check reference: %w", err)
		}
		if !exists {
			return ref, nil
		}
	}
	return "", errReferenceSpaceExhausted
}
