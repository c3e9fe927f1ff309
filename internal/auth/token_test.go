package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(42, "ana@example.com", secret)
	require.NoError(t, err)

	claims, err := ParseToken(tok, secret)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, "ana@example.com", claims.Email)
}

func TestGenerateToken_SevenDayValidity(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	before := time.Now()
	tok, err := GenerateToken(1, "a@b.com", secret)
	require.NoError(t, err)

	claims, err := ParseToken(tok, secret)
	require.NoError(t, err)

	validity := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	require.Equal(t, 7*24*time.Hour, validity)
	require.WithinDuration(t, before.Add(7*24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 7,
		Email:  "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tok, err := expired.SignedString(secret)
	require.NoError(t, err)

	_, err = ParseToken(tok, secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(7, "a@b.com", []byte("right-secret"))
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("wrong-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", []byte("k"))
	require.ErrorIs(t, err, ErrInvalidToken)
}
