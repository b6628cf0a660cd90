package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: malformed structure,
// signature mismatch, elapsed expiry or a missing subject claim. Expiry is the
// only invalidation path; there is no refresh or revocation.
var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = time.Hour

// TokenManager issues and verifies HS256 identity tokens carrying the subject
// id in the "id" claim.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    tokenTTL,
		now:    time.Now,
	}
}

func (tm *TokenManager) Issue(subjectID string) (string, error) {
	claims := jwt.MapClaims{
		"id":  subjectID,
		"exp": tm.now().Add(tm.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded subject id.
func (tm *TokenManager) Verify(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	subjectID, _ := claims["id"].(string)
	if subjectID == "" {
		return "", ErrInvalidToken
	}
	return subjectID, nil
}
