package models

import "time"

// Job defines a job posting based on the 'jobs' table. A job is owned by
// the company that created it; only the owner or an admin may mutate it.
type Job struct {
	ID                  string    `json:"id" db:"id"`
	CompanyID           string    `json:"companyId" db:"company_id"` // Owning company row id
	Title               string    `json:"title" db:"title" example:"Backend Engineer"`
	Description         string    `json:"description" db:"description"`
	Requirements        []string  `json:"requirements" db:"requirements"`
	Location            string    `json:"location" db:"location" example:"Pune"`
	SalaryMin           int64     `json:"salaryMin" db:"salary_min"`
	SalaryMax           int64     `json:"salaryMax" db:"salary_max"`
	JobType             JobType   `json:"jobType" db:"job_type" example:"full-time"`
	Status              JobStatus `json:"status" db:"status" example:"active"`
	ApplicationDeadline time.Time `json:"applicationDeadline" db:"application_deadline"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated on list/detail reads)
	Company *Company `json:"company,omitempty"`
}
