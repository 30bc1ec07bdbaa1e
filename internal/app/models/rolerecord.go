package models

import "time"

// RoleRecord is the role-specific extension row keyed 1:1 to a profile.
// The concrete variant (Student, Faculty, Company) is selected by the
// profile's role; repositories dispatch on Role() instead of branching
// on raw strings.
type RoleRecord interface {
	// Role identifies the variant
	Role() Role
	// Owner returns the profile id the record belongs to
	Owner() string
}

// Student defines the student extension based on the 'students' table
type Student struct {
	ID                 string    `json:"id" db:"id"`
	ProfileID          string    `json:"profileId" db:"profile_id"`
	RollNumber         string    `json:"rollNumber" db:"roll_number" example:"21CS045"`
	Branch             string    `json:"branch" db:"branch" example:"Computer Science"`
	Year               int       `json:"year" db:"year" example:"3"`
	CGPA               float64   `json:"cgpa" db:"cgpa" example:"8.2"` // 0 means not yet recorded
	Phone              string    `json:"phone" db:"phone"`
	Address            string    `json:"address" db:"address"`
	Skills             []string  `json:"skills" db:"skills"`
	Certifications     []string  `json:"certifications" db:"certifications"`
	TrainingExperience string    `json:"trainingExperience" db:"training_experience"`
	ResumeURL          *string   `json:"resumeUrl,omitempty" db:"resume_url"`
	ProfilePicURL      *string   `json:"profilePicUrl,omitempty" db:"profile_pic_url"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	Profile *Profile `json:"profile,omitempty"`
}

// Role implements RoleRecord
func (s *Student) Role() Role { return RoleStudent }

// Owner implements RoleRecord
func (s *Student) Owner() string { return s.ProfileID }

// Faculty defines the faculty extension based on the 'faculty' table
type Faculty struct {
	ID          string    `json:"id" db:"id"`
	ProfileID   string    `json:"profileId" db:"profile_id"`
	EmployeeID  string    `json:"employeeId" db:"employee_id" example:"FAC-1031"`
	Department  string    `json:"department" db:"department" example:"Information Technology"`
	Designation string    `json:"designation" db:"designation" example:"Professor"`
	Phone       string    `json:"phone" db:"phone"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Profile *Profile `json:"profile,omitempty"`
}

// Role implements RoleRecord
func (f *Faculty) Role() Role { return RoleFaculty }

// Owner implements RoleRecord
func (f *Faculty) Owner() string { return f.ProfileID }

// Company defines the company extension based on the 'companies' table
type Company struct {
	ID            string    `json:"id" db:"id"`
	ProfileID     string    `json:"profileId" db:"profile_id"`
	CompanyName   string    `json:"companyName" db:"company_name" example:"Acme Systems"`
	Industry      string    `json:"industry" db:"industry" example:"Software"`
	ContactPerson string    `json:"contactPerson" db:"contact_person"`
	Phone         string    `json:"phone" db:"phone"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	Profile *Profile `json:"profile,omitempty"`
}

// Role implements RoleRecord
func (c *Company) Role() Role { return RoleCompany }

// Owner implements RoleRecord
func (c *Company) Owner() string { return c.ProfileID }
