package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const folioAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // No 0/O/1/I

// GenerateFolio produces a human-referenceable application folio like
// SOL-20250601-8KQ2M7. Uniqueness is additionally guaranteed by the
// database constraint on the folio column.
func GenerateFolio(now time.Time) (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes for folio: %w", err)
	}
	for i := range b {
		b[i] = folioAlphabet[int(b[i])%len(folioAlphabet)]
	}
	return fmt.Sprintf("SOL-%s-%s", now.Format("20060102"), string(b)), nil
}
