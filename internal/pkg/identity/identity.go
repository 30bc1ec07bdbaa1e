// Package identity is the boundary to the store that owns credentials,
// email verification state, and account ids. It is a separate store from
// the relational data: calls here and calls to the repositories are
// independent network operations with no shared transaction, so callers
// that need cross-store consistency must compensate explicitly.
package identity

import (
	"context"
	"errors"
	"time"
)

// Store errors
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrTokenInvalid       = errors.New("invalid or expired verification token")
)

// Account is the credential-owning record for one person
type Account struct {
	ID            string
	Email         string
	EmailVerified bool
	CreatedAt     time.Time
}

// Store defines the identity store operations the application consumes
type Store interface {
	// CreateAccount registers credentials and returns the new stable account id
	CreateAccount(ctx context.Context, email, password string) (*Account, error)

	// Authenticate checks credentials. Wrong email or password yields
	// ErrInvalidCredentials; correct credentials on an unverified account
	// yield ErrEmailNotVerified.
	Authenticate(ctx context.Context, email, password string) (*Account, error)

	// GetAccount fetches an account by id
	GetAccount(ctx context.Context, id string) (*Account, error)

	// DeleteAccount removes an account and its credentials. Used as the
	// compensating action when downstream provisioning fails.
	DeleteAccount(ctx context.Context, id string) error

	// CreateVerificationToken issues a fresh email verification token
	CreateVerificationToken(ctx context.Context, accountID string) (string, error)

	// VerifyEmail consumes a verification token and marks the account verified
	VerifyEmail(ctx context.Context, token string) error
}
