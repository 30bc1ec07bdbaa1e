package models

import (
	"time"
)

// Profile defines the role-tagged account record shared by all user types,
// based on the 'profiles' table. Its ID is the identity account id, so the
// identity store and the relational store key the same person identically.
type Profile struct {
	ID           string       `json:"id" db:"id" example:"5f4d7a9e-0b1c-4e8f-9c3d-2a6b8e1f0c4d"` // Identity account id, shared primary key
	Email        string       `json:"email" db:"email" example:"jane@college.edu"`               // Account email address
	Role         Role         `json:"role" db:"role" example:"student"`                          // Account role, immutable after creation
	FirstName    string       `json:"firstName" db:"first_name" example:"Jane"`
	LastName     string       `json:"lastName" db:"last_name" example:"Doe"`
	ReviewStatus ReviewStatus `json:"reviewStatus" db:"review_status" example:"pending"` // Approval state machine position
	ApprovedBy   *string      `json:"approvedBy,omitempty" db:"approved_by"`             // Reviewer profile id (nullable)
	ApprovedAt   *time.Time   `json:"approvedAt,omitempty" db:"approved_at"`             // Review decision time (nullable)
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}

// IsApproved reports whether the profile may use the system. Admin
// profiles bypass the approval gate entirely; this is deliberate policy.
func (p *Profile) IsApproved() bool {
	return p.Role == RoleAdmin || p.ReviewStatus == ReviewApproved
}

// FullName joins the first and last name for display
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
