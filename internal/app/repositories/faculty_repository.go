package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/pkg/apperrors"
)

// FacultyRepository handles faculty role-record database operations
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

// Create inserts a faculty row keyed to a profile
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	if faculty.ID == "" {
		faculty.ID = uuid.New().String()
	}
	if faculty.Designation == "" {
		faculty.Designation = "Professor"
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO faculty (id, profile_id, employee_id, department, designation, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		faculty.ID, faculty.ProfileID, faculty.EmployeeID, faculty.Department,
		faculty.Designation, faculty.Phone).Scan(&faculty.CreatedAt, &faculty.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating faculty record: %w", err)
	}
	return nil
}

// GetByProfileID retrieves a faculty record by their profile id
func (r *FacultyRepository) GetByProfileID(ctx context.Context, profileID string) (*models.Faculty, error) {
	faculty := &models.Faculty{}
	err := r.db.QueryRow(ctx, `
		SELECT id, profile_id, employee_id, department, designation, phone, created_at, updated_at
		FROM faculty
		WHERE profile_id = $1`,
		profileID).Scan(
		&faculty.ID, &faculty.ProfileID, &faculty.EmployeeID, &faculty.Department,
		&faculty.Designation, &faculty.Phone, &faculty.CreatedAt, &faculty.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error fetching faculty record: %w", err)
	}
	return faculty, nil
}

// DeleteByProfileID removes a faculty row during registration rollback
func (r *FacultyRepository) DeleteByProfileID(ctx context.Context, profileID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM faculty WHERE profile_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("error deleting faculty record: %w", err)
	}
	return nil
}
