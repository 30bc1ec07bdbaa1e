package models

// Role defines the account type carried by a profile
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known account types
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// SelfRegisterable reports whether the role may be chosen at registration.
// Admin accounts are provisioned out of band, never via /auth/register.
func (r Role) SelfRegisterable() bool {
	return r == RoleStudent || r == RoleFaculty || r == RoleCompany
}

// ReviewStatus tracks the approval state machine of a profile.
// A boolean cannot distinguish "rejected" from "never reviewed",
// so the transition target is stored explicitly.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// JobStatus defines the lifecycle state of a job posting
type JobStatus string

const (
	JobActive   JobStatus = "active"
	JobInactive JobStatus = "inactive"
	JobClosed   JobStatus = "closed"
)

// Valid reports whether the status is a known job state
func (s JobStatus) Valid() bool {
	switch s {
	case JobActive, JobInactive, JobClosed:
		return true
	}
	return false
}

// JobType defines the employment type of a posting
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobInternship JobType = "internship"
)

// Valid reports whether the job type is known
func (t JobType) Valid() bool {
	switch t {
	case JobFullTime, JobPartTime, JobInternship:
		return true
	}
	return false
}

// ApplicationStatus defines the state of a job application
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "applied"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationSelected    ApplicationStatus = "selected"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// applicationStatusRank orders the application pipeline; transitions
// only move forward and terminal states never reopen.
var applicationStatusRank = map[ApplicationStatus]int{
	ApplicationApplied:     0,
	ApplicationUnderReview: 1,
	ApplicationShortlisted: 2,
	ApplicationSelected:    3,
	ApplicationRejected:    3,
}

// Valid reports whether the application status is known
func (s ApplicationStatus) Valid() bool {
	_, ok := applicationStatusRank[s]
	return ok
}

// Terminal reports whether the status ends the application pipeline
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationSelected || s == ApplicationRejected
}

// CanTransitionTo reports whether moving from s to next is a legal
// forward step in the pipeline
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s.Terminal() {
		return false
	}
	return applicationStatusRank[next] > applicationStatusRank[s]
}

// NotificationType classifies a notification for display purposes
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)
