package security

import (
	"Agora/internal/api/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSigner() *Signer {
	return NewSigner(config.JWTConfig{Secret: "test-secret", Issuer: "agora-auth", Expiration: 1})
}

func TestSigner_RoundTrip(t *testing.T) {
	s := testSigner()
	token, err := s.GenerateToken("0b9c2f3e-7a1d-4c55-9e0f-6a2b8d4c1e01", "a@example.com", "admin")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "0b9c2f3e-7a1d-4c55-9e0f-6a2b8d4c1e01", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.True(t, claims.IsAdmin())
}

func TestSigner_Rejects(t *testing.T) {
	s := testSigner()
	token, err := s.GenerateToken("u1", "a@example.com", "user")
	require.NoError(t, err)

	other := NewSigner(config.JWTConfig{Secret: "another", Issuer: "agora-auth", Expiration: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	wrongIssuer := NewSigner(config.JWTConfig{Secret: "test-secret", Issuer: "someone", Expiration: 1})
	_, err = wrongIssuer.ValidateToken(token)
	assert.Error(t, err)

	expired := NewSigner(config.JWTConfig{Secret: "test-secret", Issuer: "agora-auth", Expiration: -1})
	token, err = expired.GenerateToken("u1", "a@example.com", "user")
	require.NoError(t, err)
	_, err = s.ValidateToken(token)
	assert.Error(t, err)

	_, err = s.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	sig, err := ExtractSignature("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "c", sig)

	_, err = ExtractSignature("a.b")
	assert.Error(t, err)
}
