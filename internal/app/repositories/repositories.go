package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProfileRepository      *ProfileRepository
	RoleRecords            *RoleRecordStore
	StudentRepository      *StudentRepository
	FacultyRepository      *FacultyRepository
	CompanyRepository      *CompanyRepository
	JobRepository          *JobRepository
	ApplicationRepository  *ApplicationRepository
	NotificationRepository *NotificationRepository
	AnalyticsRepository    *AnalyticsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	students := NewStudentRepository(db)
	faculty := NewFacultyRepository(db)
	companies := NewCompanyRepository(db)

	return &Repositories{
		ProfileRepository:      NewProfileRepository(db),
		RoleRecords:            NewRoleRecordStore(students, faculty, companies),
		StudentRepository:      students,
		FacultyRepository:      faculty,
		CompanyRepository:      companies,
		JobRepository:          NewJobRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		AnalyticsRepository:    NewAnalyticsRepository(db),
	}
}
