package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/pkg/apperrors"
)

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

const profileColumns = `id, email, role, first_name, last_name, review_status, approved_by, approved_at, created_at, updated_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	profile := &models.Profile{}
	err := row.Scan(
		&profile.ID, &profile.Email, &profile.Role, &profile.FirstName, &profile.LastName,
		&profile.ReviewStatus, &profile.ApprovedBy, &profile.ApprovedAt,
		&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Create inserts a new profile row
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO profiles (id, email, role, first_name, last_name, review_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		profile.ID, profile.Email, profile.Role, profile.FirstName, profile.LastName,
		profile.ReviewStatus).Scan(&profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by id
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE id = $1`,
		id))

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}
	return profile, nil
}

// Review applies an approve/reject decision with a conditional update.
// The WHERE clause only matches pending profiles, so two racing
// reviewers cannot both win: the losing update affects zero rows and
// reports applied=false.
func (r *ProfileRepository) Review(ctx context.Context, targetID, reviewerID string, status models.ReviewStatus, decidedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET review_status = $1, approved_by = $2, approved_at = $3, updated_at = $3
		WHERE id = $4 AND review_status = 'pending'`,
		status, reviewerID, decidedAt, targetID)

	if err != nil {
		return false, fmt.Errorf("error updating review status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateNames updates the display names on a profile
func (r *ProfileRepository) UpdateNames(ctx context.Context, id, firstName, lastName string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET first_name = $1, last_name = $2, updated_at = $3
		WHERE id = $4`,
		firstName, lastName, time.Now(), id)

	if err != nil {
		return fmt.Errorf("error updating profile names: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

// Delete removes a profile row. Used as a compensating action when
// role-record provisioning fails mid-registration.
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}
