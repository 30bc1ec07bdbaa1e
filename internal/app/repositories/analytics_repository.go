package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placemate/placemate/internal/app/models"
)

// AnalyticsRepository reads flat row projections for the aggregation
// engine. Aggregation itself happens in the service layer; these
// queries only join and flatten.
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: db,
	}
}

// ProfileRow is one profile flattened for counting
type ProfileRow struct {
	Role         models.Role
	ReviewStatus models.ReviewStatus
	CreatedAt    time.Time
}

// StudentRow is one student flattened for branch rollups
type StudentRow struct {
	ID           string
	Branch       string
	Year         int
	CGPA         float64
	ReviewStatus models.ReviewStatus
}

// CompanyRow is one company flattened for industry rollups
type CompanyRow struct {
	ID           string
	CompanyName  string
	Industry     string
	ReviewStatus models.ReviewStatus
}

// JobRow is one job flattened for counting
type JobRow struct {
	CompanyID string
	Industry  string
	Status    models.JobStatus
	CreatedAt time.Time
}

// ApplicationRow is one application flattened with its student's branch
// and its job's industry
type ApplicationRow struct {
	StudentID string
	Branch    string
	Industry  string
	Status    models.ApplicationStatus
	AppliedAt time.Time
}

// PlacementRow is one selected application joined through student,
// profile, job and company
type PlacementRow struct {
	FirstName  string
	LastName   string
	Email      string
	Branch     string
	Year       int
	CGPA       float64
	Company    string
	JobTitle   string
	Location   string
	SalaryMin  int64
	SalaryMax  int64
	AppliedAt  time.Time
	ReviewedAt *time.Time
}

// Profiles returns every profile's role, review status and creation time
func (r *AnalyticsRepository) Profiles(ctx context.Context) ([]ProfileRow, error) {
	rows, err := r.db.Query(ctx, `SELECT role, review_status, created_at FROM profiles`)
	if err != nil {
		return nil, fmt.Errorf("error reading profile rows: %w", err)
	}
	defer rows.Close()

	out := []ProfileRow{}
	for rows.Next() {
		var row ProfileRow
		if err := rows.Scan(&row.Role, &row.ReviewStatus, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning profile row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Students returns every student with its owning profile's review status
func (r *AnalyticsRepository) Students(ctx context.Context) ([]StudentRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.branch, s.year, s.cgpa, p.review_status
		FROM students s
		JOIN profiles p ON p.id = s.profile_id`)
	if err != nil {
		return nil, fmt.Errorf("error reading student rows: %w", err)
	}
	defer rows.Close()

	out := []StudentRow{}
	for rows.Next() {
		var row StudentRow
		if err := rows.Scan(&row.ID, &row.Branch, &row.Year, &row.CGPA, &row.ReviewStatus); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Companies returns every company with its owning profile's review status
func (r *AnalyticsRepository) Companies(ctx context.Context) ([]CompanyRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.company_name, c.industry, p.review_status
		FROM companies c
		JOIN profiles p ON p.id = c.profile_id`)
	if err != nil {
		return nil, fmt.Errorf("error reading company rows: %w", err)
	}
	defer rows.Close()

	out := []CompanyRow{}
	for rows.Next() {
		var row CompanyRow
		if err := rows.Scan(&row.ID, &row.CompanyName, &row.Industry, &row.ReviewStatus); err != nil {
			return nil, fmt.Errorf("error scanning company row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Jobs returns every job with its company's industry
func (r *AnalyticsRepository) Jobs(ctx context.Context) ([]JobRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT j.company_id, c.industry, j.status, j.created_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id`)
	if err != nil {
		return nil, fmt.Errorf("error reading job rows: %w", err)
	}
	defer rows.Close()

	out := []JobRow{}
	for rows.Next() {
		var row JobRow
		if err := rows.Scan(&row.CompanyID, &row.Industry, &row.Status, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Applications returns every application with its student's branch and
// its job's industry
func (r *AnalyticsRepository) Applications(ctx context.Context) ([]ApplicationRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.student_id, s.branch, c.industry, a.status, a.applied_at
		FROM applications a
		JOIN students s ON s.id = a.student_id
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id`)
	if err != nil {
		return nil, fmt.Errorf("error reading application rows: %w", err)
	}
	defer rows.Close()

	out := []ApplicationRow{}
	for rows.Next() {
		var row ApplicationRow
		if err := rows.Scan(&row.StudentID, &row.Branch, &row.Industry, &row.Status, &row.AppliedAt); err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Placements returns the selected applications fully joined for the
// placement report
func (r *AnalyticsRepository) Placements(ctx context.Context) ([]PlacementRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.first_name, p.last_name, p.email, s.branch, s.year, s.cgpa,
		       c.company_name, j.title, j.location, j.salary_min, j.salary_max,
		       a.applied_at, a.reviewed_at
		FROM applications a
		JOIN students s ON s.id = a.student_id
		JOIN profiles p ON p.id = s.profile_id
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.status = 'selected'
		ORDER BY a.reviewed_at DESC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("error reading placement rows: %w", err)
	}
	defer rows.Close()

	out := []PlacementRow{}
	for rows.Next() {
		var row PlacementRow
		if err := rows.Scan(&row.FirstName, &row.LastName, &row.Email, &row.Branch,
			&row.Year, &row.CGPA, &row.Company, &row.JobTitle, &row.Location,
			&row.SalaryMin, &row.SalaryMax, &row.AppliedAt, &row.ReviewedAt); err != nil {
			return nil, fmt.Errorf("error scanning placement row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
