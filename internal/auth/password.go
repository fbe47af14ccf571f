package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt cost for new digests. Tests lower it.
var passwordCost = bcrypt.DefaultCost

// HashPassword returns the salted bcrypt digest of password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(h), err
}

// CheckPassword reports if password matches digest.
//
// A digest that is not a valid bcrypt hash never matches.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
