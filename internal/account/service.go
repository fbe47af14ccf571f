// Package account implements the account lifecycle and session
// authentication of the cash tracker.
//
// Accounts start unconfirmed with a six digit token that is mailed to the
// user. Confirming with that token clears it. Only confirmed accounts can
// log in and receive a session token, which authenticates all further
// requests.
package account

import (
	"github.com/cashtracker/backend/internal/email"
	"github.com/cashtracker/backend/internal/models"
	"github.com/cashtracker/backend/internal/repository"
	"github.com/google/uuid"
)

// SessionIssuer issues and verifies session tokens.
type SessionIssuer interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

// Service implements all account operations.
type Service struct {
	users    repository.Users
	sessions SessionIssuer
	notifier email.Notifier
}

// NewService returns a Service storing users in users.
func NewService(users repository.Users, sessions SessionIssuer, notifier email.Notifier) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		notifier: notifier,
	}
}

// Identity is an authenticated user.
type Identity struct {
	UserID uuid.UUID
	User   models.User
}

