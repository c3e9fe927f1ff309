package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/studify/studify-api/internal/constants"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, or expiry. Callers never learn which.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the authenticated identity inside the token.
type Claims struct {
	UserID uint64 `json:"id_usuario"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed HS256 token valid for 7 days.
func GenerateToken(userID uint64, email string, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(constants.TokenValidity)),
		},
	})

	return token.SignedString(secret)
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
