package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/pkg/apperrors"
	"github.com/placemate/placemate/internal/pkg/dberrors"
)

// ApplicationRepository handles job application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create inserts a new application. The (student_id, job_id) pair is
// unique at the database level, so a concurrent duplicate loses on the
// constraint rather than racing a prior existence check.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.Status == "" {
		app.Status = models.ApplicationApplied
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO applications (id, student_id, job_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING applied_at`,
		app.ID, app.StudentID, app.JobID, app.Status).Scan(&app.AppliedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err, "applications_student_id_job_id_key") {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by id
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	app := &models.Application{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, job_id, status, applied_at, reviewed_at
		FROM applications
		WHERE id = $1`,
		id).Scan(&app.ID, &app.StudentID, &app.JobID, &app.Status, &app.AppliedAt, &app.ReviewedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error fetching application: %w", err)
	}
	return app, nil
}

// ListByStudent retrieves a student's applications with job details,
// newest first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.job_id, a.status, a.applied_at, a.reviewed_at,
		       `+jobColumns+`
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.Application{}
	for rows.Next() {
		app := &models.Application{Job: &models.Job{Company: &models.Company{}}}
		err := rows.Scan(
			&app.ID, &app.StudentID, &app.JobID, &app.Status, &app.AppliedAt, &app.ReviewedAt,
			&app.Job.ID, &app.Job.CompanyID, &app.Job.Title, &app.Job.Description,
			&app.Job.Requirements, &app.Job.Location, &app.Job.SalaryMin, &app.Job.SalaryMax,
			&app.Job.JobType, &app.Job.Status, &app.Job.ApplicationDeadline,
			&app.Job.CreatedAt, &app.Job.UpdatedAt,
			&app.Job.Company.ID, &app.Job.Company.ProfileID, &app.Job.Company.CompanyName,
			&app.Job.Company.Industry, &app.Job.Company.ContactPerson, &app.Job.Company.Phone,
			&app.Job.Company.CreatedAt, &app.Job.Company.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, nil
}

// ListByJob retrieves the applications received by a posting
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, job_id, status, applied_at, reviewed_at
		FROM applications
		WHERE job_id = $1
		ORDER BY applied_at DESC`,
		jobID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.Application{}
	for rows.Next() {
		app := &models.Application{}
		err := rows.Scan(&app.ID, &app.StudentID, &app.JobID, &app.Status,
			&app.AppliedAt, &app.ReviewedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, nil
}

// UpdateStatus records a pipeline transition and stamps the review time
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, reviewedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE applications
		SET status = $1, reviewed_at = $2
		WHERE id = $3`,
		status, reviewedAt, id)

	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}
