package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/pkg/apperrors"
)

// StudentRepository handles student role-record database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, profile_id, roll_number, branch, year, cgpa, phone, address, skills, certifications, training_experience, resume_url, profile_pic_url, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.ProfileID, &student.RollNumber, &student.Branch, &student.Year,
		&student.CGPA, &student.Phone, &student.Address, &student.Skills, &student.Certifications,
		&student.TrainingExperience, &student.ResumeURL, &student.ProfilePicURL,
		&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create inserts a student row keyed to a profile
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.New().String()
	}
	if student.Skills == nil {
		student.Skills = []string{}
	}
	if student.Certifications == nil {
		student.Certifications = []string{}
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO students (id, profile_id, roll_number, branch, year, cgpa, phone, address, skills, certifications, training_experience)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		student.ID, student.ProfileID, student.RollNumber, student.Branch, student.Year,
		student.CGPA, student.Phone, student.Address, student.Skills, student.Certifications,
		student.TrainingExperience).Scan(&student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating student record: %w", err)
	}
	return nil
}

// GetByProfileID retrieves a student record by their profile id
func (r *StudentRepository) GetByProfileID(ctx context.Context, profileID string) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE profile_id = $1`,
		profileID))

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student record: %w", err)
	}
	return student, nil
}

// GetWithProfile retrieves a student joined with the owning profile
func (r *StudentRepository) GetWithProfile(ctx context.Context, profileID string) (*models.Student, error) {
	student := &models.Student{Profile: &models.Profile{}}
	err := r.db.QueryRow(ctx, `
		SELECT s.id, s.profile_id, s.roll_number, s.branch, s.year, s.cgpa, s.phone, s.address,
		       s.skills, s.certifications, s.training_experience, s.resume_url, s.profile_pic_url,
		       s.created_at, s.updated_at,
		       p.id, p.email, p.role, p.first_name, p.last_name, p.review_status,
		       p.approved_by, p.approved_at, p.created_at, p.updated_at
		FROM students s
		JOIN profiles p ON p.id = s.profile_id
		WHERE s.profile_id = $1`,
		profileID).Scan(
		&student.ID, &student.ProfileID, &student.RollNumber, &student.Branch, &student.Year,
		&student.CGPA, &student.Phone, &student.Address, &student.Skills, &student.Certifications,
		&student.TrainingExperience, &student.ResumeURL, &student.ProfilePicURL,
		&student.CreatedAt, &student.UpdatedAt,
		&student.Profile.ID, &student.Profile.Email, &student.Profile.Role,
		&student.Profile.FirstName, &student.Profile.LastName, &student.Profile.ReviewStatus,
		&student.Profile.ApprovedBy, &student.Profile.ApprovedAt,
		&student.Profile.CreatedAt, &student.Profile.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student with profile: %w", err)
	}
	return student, nil
}

// UpdateProfile applies a partial update to the caller's student row
func (r *StudentRepository) UpdateProfile(ctx context.Context, profileID string, req *dto.UpdateStudentProfileRequest) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET phone = COALESCE($1, phone),
		    address = COALESCE($2, address),
		    branch = COALESCE($3, branch),
		    year = COALESCE($4, year),
		    cgpa = COALESCE($5, cgpa),
		    skills = COALESCE($6, skills),
		    certifications = COALESCE($7, certifications),
		    training_experience = COALESCE($8, training_experience),
		    updated_at = $9
		WHERE profile_id = $10`,
		req.Phone, req.Address, req.Branch, req.Year, req.CGPA,
		req.Skills, req.Certifications, req.TrainingExperience,
		time.Now(), profileID)

	if err != nil {
		return fmt.Errorf("error updating student record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// DeleteByProfileID removes a student row during registration rollback
func (r *StudentRepository) DeleteByProfileID(ctx context.Context, profileID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE profile_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("error deleting student record: %w", err)
	}
	return nil
}

// SetDocumentURL records an uploaded document URL on the student row.
// Only resume and profile picture URLs live on the record.
func (r *StudentRepository) SetDocumentURL(ctx context.Context, profileID, column, url string) error {
	var query string
	switch column {
	case "resume_url":
		query = `UPDATE students SET resume_url = $1, updated_at = $2 WHERE profile_id = $3`
	case "profile_pic_url":
		query = `UPDATE students SET profile_pic_url = $1, updated_at = $2 WHERE profile_id = $3`
	default:
		return fmt.Errorf("unsupported document column: %s", column)
	}

	tag, err := r.db.Exec(ctx, query, url, time.Now(), profileID)
	if err != nil {
		return fmt.Errorf("error storing document url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
