package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

func init() {
	passwordCost = bcrypt.MinCost
}

// SetClock replaces the time source of s.
func (s *Sessions) SetClock(now func() time.Time) {
	s.now = now
}
