package dto

import (
	"time"

	"github.com/placemate/placemate/internal/app/models"
)

// CreateJobRequest represents a new job posting. CompanyID targets the
// owning company when an admin posts on its behalf; company callers
// always post as themselves and the field is ignored.
type CreateJobRequest struct {
	CompanyID           string         `json:"companyId,omitempty" binding:"omitempty,uuid"`
	Title               string         `json:"title" binding:"required"`
	Description         string         `json:"description" binding:"required"`
	Requirements        []string       `json:"requirements"`
	Location            string         `json:"location" binding:"required"`
	SalaryMin           int64          `json:"salaryMin" binding:"gte=0"`
	SalaryMax           int64          `json:"salaryMax" binding:"gte=0"`
	JobType             models.JobType `json:"jobType" binding:"required,oneof=full-time part-time internship"`
	ApplicationDeadline time.Time      `json:"applicationDeadline" binding:"required"`
}

// UpdateJobRequest represents changes to an existing posting. Pointer
// fields distinguish "unset" from zero values.
type UpdateJobRequest struct {
	Title               *string           `json:"title,omitempty"`
	Description         *string           `json:"description,omitempty"`
	Requirements        []string          `json:"requirements,omitempty"`
	Location            *string           `json:"location,omitempty"`
	SalaryMin           *int64            `json:"salaryMin,omitempty"`
	SalaryMax           *int64            `json:"salaryMax,omitempty"`
	JobType             *models.JobType   `json:"jobType,omitempty"`
	Status              *models.JobStatus `json:"status,omitempty"`
	ApplicationDeadline *time.Time        `json:"applicationDeadline,omitempty"`
}

// JobResponse wraps a single job
type JobResponse struct {
	Message string      `json:"message,omitempty"`
	Job     *models.Job `json:"job"`
}

// JobListResponse wraps a filtered job listing
type JobListResponse struct {
	Jobs []*models.Job `json:"jobs"`
}

// UpdateApplicationStatusRequest advances an application in the pipeline
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=applied under_review shortlisted selected rejected"`
}

// ApplicationResponse wraps a single application
type ApplicationResponse struct {
	Message     string              `json:"message,omitempty"`
	Application *models.Application `json:"application"`
}

// ApplicationListResponse wraps a student's applications with job details
type ApplicationListResponse struct {
	Applications []*models.Application `json:"applications"`
}
