package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/app/repositories"
	"github.com/placemate/placemate/internal/pkg/apperrors"
)

// JobService handles job postings and the application pipeline
type JobService struct {
	jobs         JobStore
	applications ApplicationStore
	companies    CompanyStore
	students     StudentStore
	logger       zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobs JobStore, applications ApplicationStore, companies CompanyStore, students StudentStore, logger zerolog.Logger) *JobService {
	return &JobService{
		jobs:         jobs,
		applications: applications,
		companies:    companies,
		students:     students,
		logger:       logger,
	}
}

// List returns jobs matching the filter
func (s *JobService) List(ctx context.Context, filter repositories.JobFilter) ([]*models.Job, error) {
	return s.jobs.List(ctx, filter)
}

// Get returns a single job with its company
func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// Create posts a new job owned by the caller's company. Admins post on
// behalf of a company named in the request instead of resolving their
// own, which they don't have.
func (s *JobService) Create(ctx context.Context, callerProfileID string, callerRole models.Role, req *dto.CreateJobRequest) (*models.Job, error) {
	var company *models.Company
	var err error
	if callerRole == models.RoleAdmin {
		if req.CompanyID == "" {
			return nil, apperrors.NewValidationError("missing company", map[string]interface{}{
				"companyId": "companyId is required when an admin posts a job",
			})
		}
		company, err = s.companies.GetByID(ctx, req.CompanyID)
	} else {
		company, err = s.companies.GetByProfileID(ctx, callerProfileID)
	}
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		CompanyID:           company.ID,
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		JobType:             req.JobType,
		Status:              models.JobActive,
		ApplicationDeadline: req.ApplicationDeadline,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	job.Company = company
	return job, nil
}

// authorizeJobMutation checks that the caller owns the job or is an admin
func (s *JobService) authorizeJobMutation(ctx context.Context, callerProfileID string, callerRole models.Role, job *models.Job) error {
	if callerRole == models.RoleAdmin {
		return nil
	}
	company, err := s.companies.GetByProfileID(ctx, callerProfileID)
	if err != nil {
		return apperrors.ErrPermissionDenied
	}
	if company.ID != job.CompanyID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// Update mutates a posting on behalf of its owning company or an admin
func (s *JobService) Update(ctx context.Context, callerProfileID string, callerRole models.Role, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeJobMutation(ctx, callerProfileID, callerRole, job); err != nil {
		return nil, err
	}
	if err := s.jobs.Update(ctx, jobID, req); err != nil {
		return nil, err
	}
	return s.jobs.GetByID(ctx, jobID)
}

// Delete removes a posting on behalf of its owning company or an admin
func (s *JobService) Delete(ctx context.Context, callerProfileID string, callerRole models.Role, jobID string) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if err := s.authorizeJobMutation(ctx, callerProfileID, callerRole, job); err != nil {
		return err
	}
	return s.jobs.Delete(ctx, jobID)
}

// Apply creates an application from the calling student to a job.
// Closed or deadline-passed jobs reject the application; the unique
// (student, job) constraint turns a duplicate into a conflict.
func (s *JobService) Apply(ctx context.Context, callerProfileID, jobID string) (*models.Application, error) {
	student, err := s.students.GetByProfileID(ctx, callerProfileID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.Status != models.JobActive {
		return nil, apperrors.ErrJobClosed
	}
	if time.Now().After(job.ApplicationDeadline) {
		return nil, apperrors.ErrDeadlinePassed
	}

	app := &models.Application{
		StudentID: student.ID,
		JobID:     job.ID,
		Status:    models.ApplicationApplied,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListStudentApplications returns the calling student's applications
// with job details
func (s *JobService) ListStudentApplications(ctx context.Context, callerProfileID string) ([]*models.Application, error) {
	student, err := s.students.GetByProfileID(ctx, callerProfileID)
	if err != nil {
		return nil, err
	}
	return s.applications.ListByStudent(ctx, student.ID)
}

// ListJobApplications returns the applications a posting received,
// restricted to its owner, faculty or an admin
func (s *JobService) ListJobApplications(ctx context.Context, callerProfileID string, callerRole models.Role, jobID string) ([]*models.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if callerRole != models.RoleFaculty {
		if err := s.authorizeJobMutation(ctx, callerProfileID, callerRole, job); err != nil {
			return nil, err
		}
	}
	return s.applications.ListByJob(ctx, jobID)
}

// UpdateApplicationStatus advances an application in the pipeline.
// Transitions only move forward; terminal states never reopen.
func (s *JobService) UpdateApplicationStatus(ctx context.Context, callerProfileID string, callerRole models.Role, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if callerRole != models.RoleFaculty {
		if err := s.authorizeJobMutation(ctx, callerProfileID, callerRole, job); err != nil {
			return nil, err
		}
	}

	if !app.Status.CanTransitionTo(status) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidTransition, "application status can only move forward in the pipeline")
	}

	reviewedAt := time.Now()
	if err := s.applications.UpdateStatus(ctx, applicationID, status, reviewedAt); err != nil {
		return nil, err
	}
	app.Status = status
	app.ReviewedAt = &reviewedAt
	return app, nil
}
