package service

import "context"

// Mailer defines the interface for sending transactional email.
type Mailer interface {
	// SendLoginCode delivers a login verification code to an address.
	SendLoginCode(ctx context.Context, email, code string) error
}
