package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	token, err := svc.Issue(Claims{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(Claims{Email: "alice@example.com"})
	require.NoError(t, err)

	// Back to real time: the token expired an hour ago.
	svc.now = time.Now

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSignature(t *testing.T) {
	issuer := NewTokenService([]byte("issuer-secret"))
	verifier := NewTokenService([]byte("other-secret"))

	token, err := issuer.Issue(Claims{Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
