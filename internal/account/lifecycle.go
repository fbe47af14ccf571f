package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/cashtracker/backend/internal/auth"
	"github.com/cashtracker/backend/internal/email"
	"github.com/cashtracker/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Register creates an unconfirmed account and mails the confirmation token.
func (s *Service) Register(ctx context.Context, name, address, password string) error {
	_, err := s.users.FindByEmail(ctx, address)
	if err == nil {
		countEvent("register", ErrDuplicateEmail)
		return ErrDuplicateEmail
	}
	if !errors.Is(err, models.ErrResourceNotFound) {
		return err
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	user := models.User{
		Name:     name,
		Email:    address,
		Password: digest,
	}
	user.SetToken(token)

	err = s.users.Create(ctx, &user)
	if errors.Is(err, models.ErrEmailNotUnique) {
		countEvent("register", ErrDuplicateEmail)
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}

	log.Debug().Str("user", user.ID.String()).Msg("account created")
	countEvent("register", nil)

	s.notifier.Notify(ctx, email.Event{
		Kind:  email.ConfirmAccount,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})

	return nil
}

// Confirm confirms the account holding token. A token can only be used once.
func (s *Service) Confirm(ctx context.Context, token string) error {
	user, err := s.users.FindByToken(ctx, token)
	if err != nil {
		err = notFoundAs(err, ErrInvalidToken)
		countEvent("confirm", err)
		return err
	}

	user.Confirmed = true
	user.SetToken("")

	if err := s.users.Update(ctx, &user); err != nil {
		return err
	}

	countEvent("confirm", nil)
	return nil
}

// ForgotPassword replaces the token of the account with a fresh one and
// mails it to the user.
func (s *Service) ForgotPassword(ctx context.Context, address string) error {
	user, err := s.users.FindByEmail(ctx, address)
	if err != nil {
		return notFoundAs(err, ErrUserNotFound)
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	user.SetToken(token)
	if err := s.users.Update(ctx, &user); err != nil {
		return err
	}

	s.notifier.Notify(ctx, email.Event{
		Kind:  email.ResetPassword,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})

	return nil
}

// ValidateToken checks that an account holds token.
func (s *Service) ValidateToken(ctx context.Context, token string) error {
	_, err := s.users.FindByToken(ctx, token)
	return notFoundAs(err, ErrTokenNotFound)
}

// ResetPassword sets a new password on the account holding token and
// consumes the token.
//
// Receiving the token proves control of the address, so an account that
// was not confirmed yet is confirmed as well.
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.users.FindByToken(ctx, token)
	if err != nil {
		return notFoundAs(err, ErrTokenNotFound)
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	user.Password = digest
	user.Confirmed = true
	user.SetToken("")

	if err := s.users.Update(ctx, &user); err != nil {
		return err
	}

	countEvent("reset-password", nil)
	return nil
}

// notFoundAs replaces a not found error of the store with target.
func notFoundAs(err, target error) error {
	if errors.Is(err, models.ErrResourceNotFound) {
		return target
	}
	return err
}
