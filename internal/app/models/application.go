package models

import "time"

// Application defines a student's application to a job, based on the
// 'applications' table. One application per (student, job) pair; the
// pair is unique at the database level.
type Application struct {
	ID         string            `json:"id" db:"id"`
	StudentID  string            `json:"studentId" db:"student_id"` // Student row id, not profile id
	JobID      string            `json:"jobId" db:"job_id"`
	Status     ApplicationStatus `json:"status" db:"status" example:"applied"`
	AppliedAt  time.Time         `json:"appliedAt" db:"applied_at"`
	ReviewedAt *time.Time        `json:"reviewedAt,omitempty" db:"reviewed_at"`

	// Relation (populated on student-facing reads)
	Job *Job `json:"job,omitempty"`
}
