// Package tokens issues and parses the JWT access tokens used to
// authenticate API callers. Tokens are signed with HS256 and carry the user
// id as subject plus an admin flag claim.
package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims embedded in an access token.
type AccessClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// NewAccessToken signs an access token for the given user id.
func NewAccessToken(userID string, admin bool, expiresAt time.Time, secret []byte) (string, error) {
	claims := AccessClaims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// AccessClaimsFromToken parses and verifies an access token string.
// Only HS256-signed tokens are accepted.
func AccessClaimsFromToken(tokenStr string, secret []byte) (*AccessClaims, error) {
	var claims AccessClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	return &claims, nil
}
