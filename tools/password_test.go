package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash := PasswordEncrypt("rahasia123")
	require.NotEqual(t, "rahasia123", hash)
	require.True(t, PasswordCompare("rahasia123", hash))
	require.False(t, PasswordCompare("rahasia124", hash))
}

func TestPasswordHashDiffers(t *testing.T) {
	// bcrypt salts, so two hashes of the same input must differ
	require.NotEqual(t, PasswordEncrypt("abc12345"), PasswordEncrypt("abc12345"))
}
