package unlockcode

import (
	"strings"
	"testing"

	"mdm/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(length int) *randomCodeGenerator {
	cfg := &config.Config{
		UnlockCode: &config.UnlockCodeConfig{Length: length},
	}

	gen := New(Params{Config: cfg})

	return gen.(*randomCodeGenerator)
}

func TestRandomCodeGenerator_UnlockCode(t *testing.T) {
	gen := newTestGenerator(8)

	seen := make(map[string]bool)
	for range 50 {
		code, err := gen.UnlockCode()
		require.NoError(t, err)
		assert.Len(t, code, 8)

		for _, ch := range code {
			assert.Contains(t, unlockCodeAlphabet, string(ch))
		}

		assert.False(t, seen[code], "generated duplicate code %s", code)
		seen[code] = true
	}
}

func TestRandomCodeGenerator_UnlockCodeConfiguredLength(t *testing.T) {
	gen := newTestGenerator(12)

	code, err := gen.UnlockCode()
	require.NoError(t, err)
	assert.Len(t, code, 12)
}

func TestRandomCodeGenerator_EnrollmentToken(t *testing.T) {
	gen := newTestGenerator(8)

	token, err := gen.EnrollmentToken()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(token), 40)

	// Tokens are embedded in URLs and QR payloads, so they must be url-safe.
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")

	other, err := gen.EnrollmentToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestRandomCodeGenerator_LicenseKey(t *testing.T) {
	gen := newTestGenerator(8)

	key, err := gen.LicenseKey()
	require.NoError(t, err)

	parts := strings.Split(key, "-")
	require.Len(t, parts, 4)
	assert.Equal(t, "MDM", parts[0])
	for _, part := range parts[1:] {
		assert.Len(t, part, 4)
	}
}
