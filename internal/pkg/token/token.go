// Package token issues and validates the signed session tokens that carry
// identity claims between requests. Tokens are stateless: validity is a
// function of the HMAC signature and the embedded expiry alone, and there is
// no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Lifetime is the fixed validity window of every issued token. Expiry forces
// re-authentication; no refresh endpoint exists.
const Lifetime = 24 * time.Hour

var ErrInvalid = errors.New("token invalid or expired")

// Claims are the identity attributes embedded in a session token.
type Claims struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"rol"`
	CompanyID *int64 `json:"empresa_id,omitempty"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a single process-wide
// symmetric secret, injected once at construction and immutable afterwards.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue produces a signed token for the given identity, valid for Lifetime
// from now.
func (s *Service) Issue(userID int64, email, role string, companyID *int64) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate parses and verifies a token, returning its claims. Any failure —
// bad signature, past expiry, unparsable structure — collapses into
// ErrInvalid; callers never see the underlying parse error.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
