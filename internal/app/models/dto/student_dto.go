package dto

import "github.com/placemate/placemate/internal/app/models"

// UpdateStudentProfileRequest updates the caller's profile names and
// student record. Pointer fields distinguish "unset" from zero values.
type UpdateStudentProfileRequest struct {
	FirstName          string   `json:"firstName" binding:"required"`
	LastName           string   `json:"lastName" binding:"required"`
	Phone              *string  `json:"phone,omitempty"`
	Address            *string  `json:"address,omitempty"`
	Branch             *string  `json:"branch,omitempty"`
	Year               *int     `json:"year,omitempty" binding:"omitempty,gte=1,lte=6"`
	CGPA               *float64 `json:"cgpa,omitempty" binding:"omitempty,gte=0,lte=10"`
	Skills             []string `json:"skills,omitempty"`
	Certifications     []string `json:"certifications,omitempty"`
	TrainingExperience *string  `json:"trainingExperience,omitempty"`
}

// StudentProfileResponse wraps the caller's student record with the
// associated profile fields
type StudentProfileResponse struct {
	Student *models.Student `json:"student"`
}

// UploadResponse reports a stored file
type UploadResponse struct {
	Message  string `json:"message"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}
