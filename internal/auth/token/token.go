// Package token issues and verifies the signed bearer credentials that
// identify a user on every request. Tokens are HS256 JWTs carrying the
// user id; they are never persisted and never revoked before expiry.
package token

import (
	"time"

	authdomain "taskflow-backend/internal/auth/domain"

	"github.com/golang-jwt/jwt/v5"
)

// timeNow is swapped out in tests to check behavior around expiry.
var timeNow = time.Now

// Claims embeds the registered claims and adds the owning user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Issue signs a token for userID valid for ttl from now.
func Issue(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := timeNow()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify parses and validates a token and returns the user id it was
// issued for. Verification is binary: any malformed, tampered or expired
// token fails with domain.ErrInvalidToken.
func Verify(raw string, secret []byte) (string, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return timeNow() }),
	)

	tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return "", authdomain.ErrInvalidToken
	}

	return claims.UserID, nil
}
