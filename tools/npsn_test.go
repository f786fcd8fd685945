package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidNPSN(t *testing.T) {
	require.True(t, ValidNPSN("12345678"))
	require.True(t, ValidNPSN("00000000"))

	require.False(t, ValidNPSN(""))
	require.False(t, ValidNPSN("1234567"))
	require.False(t, ValidNPSN("123456789"))
	require.False(t, ValidNPSN("1234567a"))
	require.False(t, ValidNPSN("1234 678"))
	require.False(t, ValidNPSN("１２３４５６７８")) // full-width digits are not ASCII
}
