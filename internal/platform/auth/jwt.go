// Package auth validates bearer tokens issued by the external identity
// provider. Token issuance, sessions, and user management all live with the
// provider; this package only checks signatures and extracts the subject.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"lifelink/internal/platform/middleware"
)

// HS256Validator validates HS256-signed tokens against a shared key.
type HS256Validator struct {
	key []byte
}

// NewHS256Validator constructs a validator from the configured signing key.
func NewHS256Validator(key string) (*HS256Validator, error) {
	if key == "" {
		return nil, errors.New("signing key is required")
	}
	return &HS256Validator{key: []byte(key)}, nil
}

// ValidateToken parses and verifies tokenString, returning its subject claim.
func (v *HS256Validator) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("read subject: %w", err)
	}
	return &middleware.JWTClaims{Subject: subject}, nil
}
