package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
)

// documentColumns maps upload file types to the student row column
// that records the resulting URL. Other file types are stored without
// a row reference.
var documentColumns = map[string]string{
	"resume":      "resume_url",
	"profile_pic": "profile_pic_url",
}

// StudentService handles the student's self-scoped profile
type StudentService struct {
	students    StudentStore
	profileRepo ProfileStore
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, profileRepo ProfileStore, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students:    students,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile returns the caller's student record with profile fields
func (s *StudentService) GetProfile(ctx context.Context, callerProfileID string) (*models.Student, error) {
	return s.students.GetWithProfile(ctx, callerProfileID)
}

// UpdateProfile applies a partial update to the caller's profile names
// and student record
func (s *StudentService) UpdateProfile(ctx context.Context, callerProfileID string, req *dto.UpdateStudentProfileRequest) (*models.Student, error) {
	if err := s.profileRepo.UpdateNames(ctx, callerProfileID, req.FirstName, req.LastName); err != nil {
		return nil, err
	}
	if err := s.students.UpdateProfile(ctx, callerProfileID, req); err != nil {
		return nil, err
	}
	return s.students.GetWithProfile(ctx, callerProfileID)
}

// RecordDocument stores an uploaded document URL on the caller's
// student row when the file type maps to one
func (s *StudentService) RecordDocument(ctx context.Context, callerProfileID, fileType, url string) error {
	column, ok := documentColumns[fileType]
	if !ok {
		return nil
	}
	return s.students.SetDocumentURL(ctx, callerProfileID, column, url)
}
