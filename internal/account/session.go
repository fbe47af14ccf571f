package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cashtracker/backend/internal/auth"
	"github.com/cashtracker/backend/internal/models"
)

// Login returns a session token for the account with the given address.
//
// The confirmation state is checked before the password, so an unconfirmed
// account always fails with ErrNotConfirmed.
func (s *Service) Login(ctx context.Context, address, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, address)
	if err != nil {
		err = notFoundAs(err, ErrUserNotFound)
		countEvent("login", err)
		return "", err
	}

	if !user.Confirmed {
		countEvent("login", ErrNotConfirmed)
		return "", ErrNotConfirmed
	}

	if !auth.CheckPassword(password, user.Password) {
		countEvent("login", ErrIncorrectPassword)
		return "", ErrIncorrectPassword
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	countEvent("login", nil)
	return token, nil
}

// Authenticate verifies the value of an Authorization header and returns
// the identity of the user it was issued for.
//
// An empty header fails with ErrUnauthorized. Every other header that does
// not carry a valid bearer token fails with ErrInvalidToken.
func (s *Service) Authenticate(ctx context.Context, header string) (Identity, error) {
	if strings.TrimSpace(header) == "" {
		countEvent("authenticate", ErrUnauthorized)
		return Identity{}, ErrUnauthorized
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		countEvent("authenticate", ErrInvalidToken)
		return Identity{}, ErrInvalidToken
	}

	id, err := s.sessions.Verify(strings.TrimSpace(token))
	if err != nil {
		countEvent("authenticate", ErrInvalidToken)
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, models.ErrResourceNotFound) {
		countEvent("authenticate", ErrInvalidToken)
		return Identity{}, ErrInvalidToken
	}
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: user.ID, User: user}, nil
}

// UpdatePassword replaces the password of the authenticated user if
// current matches the stored one.
func (s *Service) UpdatePassword(ctx context.Context, identity Identity, current, password string) error {
	if !auth.CheckPassword(current, identity.User.Password) {
		return ErrIncorrectPassword
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	user := identity.User
	user.Password = digest
	return s.users.Update(ctx, &user)
}

// CheckPassword verifies password against the one of the authenticated user.
func (s *Service) CheckPassword(_ context.Context, identity Identity, password string) error {
	if !auth.CheckPassword(password, identity.User.Password) {
		return ErrIncorrectPassword
	}
	return nil
}
