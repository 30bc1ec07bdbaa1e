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

// JobRepository handles job posting database operations
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

const jobColumns = `j.id, j.company_id, j.title, j.description, j.requirements, j.location,
	j.salary_min, j.salary_max, j.job_type, j.status, j.application_deadline, j.created_at, j.updated_at,
	c.id, c.profile_id, c.company_name, c.industry, c.contact_person, c.phone, c.created_at, c.updated_at`

func scanJob(row pgx.Row) (*models.Job, error) {
	job := &models.Job{Company: &models.Company{}}
	err := row.Scan(
		&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.Requirements, &job.Location,
		&job.SalaryMin, &job.SalaryMax, &job.JobType, &job.Status, &job.ApplicationDeadline,
		&job.CreatedAt, &job.UpdatedAt,
		&job.Company.ID, &job.Company.ProfileID, &job.Company.CompanyName, &job.Company.Industry,
		&job.Company.ContactPerson, &job.Company.Phone, &job.Company.CreatedAt, &job.Company.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// Create inserts a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Status == "" {
		job.Status = models.JobActive
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO jobs (id, company_id, title, description, requirements, location, salary_min, salary_max, job_type, status, application_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		job.ID, job.CompanyID, job.Title, job.Description, job.Requirements, job.Location,
		job.SalaryMin, job.SalaryMax, job.JobType, job.Status,
		job.ApplicationDeadline).Scan(&job.CreatedAt, &job.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}
	return nil
}

// GetByID retrieves a job with its owning company
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `
		SELECT `+jobColumns+`
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`,
		id))

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error fetching job: %w", err)
	}
	return job, nil
}

// JobFilter narrows job listings. Zero values mean "no constraint".
type JobFilter struct {
	Status    models.JobStatus
	JobType   models.JobType
	Location  string
	CompanyID string
}

// List retrieves jobs matching the filter, newest first
func (r *JobRepository) List(ctx context.Context, filter JobFilter) ([]*models.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND j.status = $%d", len(args))
	}
	if filter.JobType != "" {
		args = append(args, filter.JobType)
		query += fmt.Sprintf(" AND j.job_type = $%d", len(args))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		query += fmt.Sprintf(" AND j.location ILIKE $%d", len(args))
	}
	if filter.CompanyID != "" {
		args = append(args, filter.CompanyID)
		query += fmt.Sprintf(" AND j.company_id = $%d", len(args))
	}
	query += " ORDER BY j.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}

// Update applies a partial update to an existing posting
func (r *JobRepository) Update(ctx context.Context, id string, req *dto.UpdateJobRequest) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE jobs
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    requirements = COALESCE($3, requirements),
		    location = COALESCE($4, location),
		    salary_min = COALESCE($5, salary_min),
		    salary_max = COALESCE($6, salary_max),
		    job_type = COALESCE($7, job_type),
		    status = COALESCE($8, status),
		    application_deadline = COALESCE($9, application_deadline),
		    updated_at = $10
		WHERE id = $11`,
		req.Title, req.Description, req.Requirements, req.Location,
		req.SalaryMin, req.SalaryMax, req.JobType, req.Status, req.ApplicationDeadline,
		time.Now(), id)

	if err != nil {
		return fmt.Errorf("error updating job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// Delete removes a posting and cascades to its applications
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}
