// Package auth issues and verifies the signed session tokens carried in
// the "token" cookie.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed token, bad
// signature, expired token. It never carries key material.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity claim embedded in a token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a server-held HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL reports the configured token lifetime. The cookie max-age is kept in
// lockstep with it.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue produces a signed token embedding the email claim with expiry
// fixed at ttl from now.
func (c *Codec) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify returns the decoded claims if the signature and expiry check out,
// ErrInvalidToken otherwise.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
