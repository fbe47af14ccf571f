package auth

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrEmptyPassword  = errors.New("the password must not be empty")
	ErrInvalidSubject = errors.New("the token subject is not a valid user ID")
)
