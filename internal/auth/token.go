package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

// TokenLength is the number of digits of a confirmation token.
const TokenLength = 6

var (
	tokenLimit   = big.NewInt(1_000_000)
	tokenPattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// GenerateToken returns a random six digit token used to confirm accounts
// and reset passwords.
func GenerateToken() (string, error) {
	n, err := rand.Int(rand.Reader, tokenLimit)
	if err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}

	return fmt.Sprintf("%0*d", TokenLength, n.Int64()), nil
}

// IsToken reports if s has the shape of a confirmation token.
func IsToken(s string) bool {
	return tokenPattern.MatchString(s)
}
