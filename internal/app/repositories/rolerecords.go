package repositories

import (
	"context"
	"fmt"

	"github.com/placemate/placemate/internal/app/models"
)

// RoleRecordStore dispatches role-record persistence to the repository
// matching the record's variant, so callers work against the RoleRecord
// interface instead of branching per role.
type RoleRecordStore struct {
	students  *StudentRepository
	faculty   *FacultyRepository
	companies *CompanyRepository
}

// NewRoleRecordStore creates a new RoleRecordStore
func NewRoleRecordStore(students *StudentRepository, faculty *FacultyRepository, companies *CompanyRepository) *RoleRecordStore {
	return &RoleRecordStore{
		students:  students,
		faculty:   faculty,
		companies: companies,
	}
}

// Create persists the record in its role-specific table
func (s *RoleRecordStore) Create(ctx context.Context, rec models.RoleRecord) error {
	switch r := rec.(type) {
	case *models.Student:
		return s.students.Create(ctx, r)
	case *models.Faculty:
		return s.faculty.Create(ctx, r)
	case *models.Company:
		return s.companies.Create(ctx, r)
	default:
		return fmt.Errorf("unsupported role record type %T", rec)
	}
}

// FetchByProfileID loads the role-specific record owned by a profile.
// Admin profiles carry no extension row and yield nil.
func (s *RoleRecordStore) FetchByProfileID(ctx context.Context, role models.Role, profileID string) (models.RoleRecord, error) {
	switch role {
	case models.RoleStudent:
		return s.students.GetByProfileID(ctx, profileID)
	case models.RoleFaculty:
		return s.faculty.GetByProfileID(ctx, profileID)
	case models.RoleCompany:
		return s.companies.GetByProfileID(ctx, profileID)
	case models.RoleAdmin:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported role %q", role)
	}
}

// DeleteByProfileID removes a profile's role-specific record. It is used
// to unwind a partially completed registration.
func (s *RoleRecordStore) DeleteByProfileID(ctx context.Context, role models.Role, profileID string) error {
	switch role {
	case models.RoleStudent:
		return s.students.DeleteByProfileID(ctx, profileID)
	case models.RoleFaculty:
		return s.faculty.DeleteByProfileID(ctx, profileID)
	case models.RoleCompany:
		return s.companies.DeleteByProfileID(ctx, profileID)
	case models.RoleAdmin:
		return nil
	default:
		return fmt.Errorf("unsupported role %q", role)
	}
}
