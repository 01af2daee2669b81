package utils_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finmex/onboarding_backend/internal/utils"
)

func TestGenerateFolio_Format(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)

	folio, err := utils.GenerateFolio(now)

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^SOL-20260829-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{6}$`), folio)
}

func TestGenerateFolio_SuffixVaries(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		folio, err := utils.GenerateFolio(now)
		require.NoError(t, err)
		seen[folio] = true
	}
	assert.Greater(t, len(seen), 1)
}
