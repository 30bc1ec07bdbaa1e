package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placemate/placemate/internal/pkg/auth"
	"github.com/placemate/placemate/internal/pkg/dberrors"
)

// DefaultCallTimeout bounds every identity store call
const DefaultCallTimeout = 10 * time.Second

// verificationTokenTTL is how long an emailed verification link stays usable
const verificationTokenTTL = 24 * time.Hour

// PostgresStore implements Store on top of a dedicated accounts schema.
// It shares a database server with the relational store but is reached
// through its own calls; nothing here participates in repository
// transactions.
type PostgresStore struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewPostgresStore creates a PostgresStore. A non-positive timeout falls
// back to DefaultCallTimeout.
func NewPostgresStore(db *pgxpool.Pool, timeout time.Duration) *PostgresStore {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &PostgresStore{db: db, timeout: timeout}
}

func (s *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// CreateAccount registers credentials and returns the new account
func (s *PostgresStore) CreateAccount(ctx context.Context, email, password string) (*Account, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &Account{
		ID:    uuid.New().String(),
		Email: email,
	}

	err = s.db.QueryRow(ctx, `
		INSERT INTO identity_accounts (id, email, password, email_verified)
		VALUES ($1, $2, $3, FALSE)
		RETURNING created_at`,
		account.ID, email, hashed).Scan(&account.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "identity_accounts_email_key") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return account, nil
}

// Authenticate checks credentials and verification state
func (s *PostgresStore) Authenticate(ctx context.Context, email, password string) (*Account, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	account := &Account{}
	var hashed string
	err := s.db.QueryRow(ctx, `
		SELECT id, email, password, email_verified, created_at
		FROM identity_accounts
		WHERE email = $1`,
		email).Scan(&account.ID, &account.Email, &hashed, &account.EmailVerified, &account.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching account: %w", err)
	}

	if !auth.CheckPassword(hashed, password) {
		return nil, ErrInvalidCredentials
	}

	if !account.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	return account, nil
}

// GetAccount fetches an account by id
func (s *PostgresStore) GetAccount(ctx context.Context, id string) (*Account, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	account := &Account{}
	err := s.db.QueryRow(ctx, `
		SELECT id, email, email_verified, created_at
		FROM identity_accounts
		WHERE id = $1`,
		id).Scan(&account.ID, &account.Email, &account.EmailVerified, &account.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("error fetching account: %w", err)
	}

	return account, nil
}

// DeleteAccount removes an account and any outstanding verification tokens
func (s *PostgresStore) DeleteAccount(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM identity_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// CreateVerificationToken issues a fresh email verification token
func (s *PostgresStore) CreateVerificationToken(ctx context.Context, accountID string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	token := uuid.New().String()
	expiresAt := time.Now().Add(verificationTokenTTL)

	_, err := s.db.Exec(ctx, `
		INSERT INTO identity_verification_tokens (token, account_id, expires_at)
		VALUES ($1, $2, $3)`,
		token, accountID, expiresAt)

	if err != nil {
		return "", fmt.Errorf("error creating verification token: %w", err)
	}

	return token, nil
}

// VerifyEmail consumes a verification token and marks the account verified
func (s *PostgresStore) VerifyEmail(ctx context.Context, token string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var accountID string
	var expiresAt time.Time
	err := s.db.QueryRow(ctx, `
		SELECT account_id, expires_at
		FROM identity_verification_tokens
		WHERE token = $1`,
		token).Scan(&accountID, &expiresAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrTokenInvalid
		}
		return fmt.Errorf("error fetching verification token: %w", err)
	}

	if time.Now().After(expiresAt) {
		return ErrTokenInvalid
	}

	_, err = s.db.Exec(ctx, `
		UPDATE identity_accounts SET email_verified = TRUE WHERE id = $1`,
		accountID)
	if err != nil {
		return fmt.Errorf("error marking email verified: %w", err)
	}

	// Consumed tokens are removed so links are single-use
	_, err = s.db.Exec(ctx, `DELETE FROM identity_verification_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error consuming verification token: %w", err)
	}

	return nil
}
