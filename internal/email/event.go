// Package email delivers account mails in the background.
//
// The account lifecycle hands events to a Notifier and never waits for
// delivery. Failed deliveries are logged and dropped.
package email

import "context"

// Kind identifies the mail that is sent for an event.
type Kind int

const (
	ConfirmAccount Kind = iota
	ResetPassword
)

func (k Kind) String() string {
	switch k {
	case ConfirmAccount:
		return "confirm-account"
	case ResetPassword:
		return "reset-password"
	}
	return "unknown"
}

// Event is a request to send a mail with a token to a user.
type Event struct {
	Kind  Kind
	Name  string
	Email string
	Token string
}

// Notifier accepts events for delivery.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// Message is a rendered mail.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a rendered mail.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
