package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token := CreateToken(Payload{UserID: 42, RoleID: 1})
	require.NotEmpty(t, token)

	claims, valid := ParseToken(token)
	require.True(t, valid)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, 1, claims.RoleID)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, valid := ParseToken("not-a-token")
	require.False(t, valid)
}

func TestParseRejectsTampered(t *testing.T) {
	token := CreateToken(Payload{UserID: 1, RoleID: 2})
	tampered := token[:len(token)-2] + "xx"
	_, valid := ParseToken(tampered)
	require.False(t, valid)
}
