package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	for _, r := range code {
		assert.Contains(t, referenceCharset, string(r))
	}

	_, err = GenerateCode(0)
	assert.Error(t, err)
}

func TestGenerateBookingReference(t *testing.T) {
	ref, err := GenerateBookingReference()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "BK-"))
	assert.Len(t, ref, 11)

	// ambiguous characters never appear
	assert.NotContains(t, ref[3:], "O")
	assert.NotContains(t, ref[3:], "0")
	assert.NotContains(t, ref[3:], "I")
	assert.NotContains(t, ref[3:], "1")
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("RESORT_TEST_KEY", "  ")
	assert.Equal(t, "fallback", EnvOrDefault("RESORT_TEST_KEY", "fallback"))

	t.Setenv("RESORT_TEST_KEY", "value")
	assert.Equal(t, "value", EnvOrDefault("RESORT_TEST_KEY", "fallback"))
}
