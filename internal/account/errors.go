package account

import "errors"

var (
	ErrDuplicateEmail    = errors.New("duplicate email")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenNotFound     = errors.New("invalid token")
	ErrUserNotFound      = errors.New("user not found")
	ErrNotConfirmed      = errors.New("not confirmed")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrUnauthorized      = errors.New("unauthorized")
)
