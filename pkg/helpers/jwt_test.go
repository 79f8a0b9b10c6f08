package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_IssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", 7*24*time.Hour)

	tok, exp, err := m.Issue("user-123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, 5*time.Second)

	uid, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestJWT_ClaimsShape(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("k", time.Hour)
	tok, _, err := m.Issue("u1")
	require.NoError(t, err)

	parsed := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, parsed)
	require.NoError(t, err)

	assert.Equal(t, "u1", parsed["userId"])
	assert.Contains(t, parsed, "exp")
	assert.Contains(t, parsed, "iat")
	assert.Len(t, parsed, 3)
}

func TestJWT_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", 7*24*time.Hour)
	past := m.WithClock(func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) })

	tok, _, err := past.Issue("u1")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewJWTManager("right-secret", time.Hour).Issue("u2")
	require.NoError(t, err)

	_, err = NewJWTManager("wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Tampered(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	tok, _, err := m.Issue("u3")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	other, _, err := m.Issue("someone-else")
	require.NoError(t, err)
	forged := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]

	_, err = m.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewJWTManager("k", time.Hour).Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_RejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	claims := &Claims{
		UserID: "u4",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager("k", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
