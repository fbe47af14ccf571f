package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sessions issues and verifies signed session tokens.
//
// Session tokens are not persisted. A token is valid until it expires.
type Sessions struct {
	secret []byte
	issuer string
	expiry time.Duration

	now func() time.Time
}

// NewSessions returns a Sessions that signs tokens with secret using HS256.
func NewSessions(secret []byte, issuer string, expiry time.Duration) *Sessions {
	return &Sessions{
		secret: secret,
		issuer: issuer,
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue returns a signed session token for the user.
func (s *Sessions) Issue(userID uuid.UUID) (string, error) {
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign session token: %w", err)
	}

	return signed, nil
}

// Verify checks the token and returns the ID of the user it was issued for.
//
// Every reason for rejection is reported as ErrInvalidToken.
func (s *Sessions) Verify(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, errors.Join(ErrInvalidSubject, err))
	}

	return id, nil
}
