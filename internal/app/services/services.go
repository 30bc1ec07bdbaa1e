package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/app/repositories"
	"github.com/placemate/placemate/internal/pkg/auth"
	"github.com/placemate/placemate/internal/pkg/email"
	"github.com/placemate/placemate/internal/pkg/identity"
)

// Store interfaces consumed by the services. The concrete repositories
// satisfy them; tests substitute in-memory fakes.

// ProfileStore persists profiles
type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	Review(ctx context.Context, targetID, reviewerID string, status models.ReviewStatus, decidedAt time.Time) (bool, error)
	UpdateNames(ctx context.Context, id, firstName, lastName string) error
	Delete(ctx context.Context, id string) error
}

// RoleRecordStore persists role-specific extension rows
type RoleRecordStore interface {
	Create(ctx context.Context, rec models.RoleRecord) error
	FetchByProfileID(ctx context.Context, role models.Role, profileID string) (models.RoleRecord, error)
	DeleteByProfileID(ctx context.Context, role models.Role, profileID string) error
}

// NotificationStore persists notifications
type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByRecipient(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID string, ids []string, read bool) (int64, error)
}

// JobStore persists job postings
type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context, filter repositories.JobFilter) ([]*models.Job, error)
	Update(ctx context.Context, id string, req *dto.UpdateJobRequest) error
	Delete(ctx context.Context, id string) error
}

// ApplicationStore persists job applications
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, reviewedAt time.Time) error
}

// StudentStore reads and mutates student rows
type StudentStore interface {
	GetByProfileID(ctx context.Context, profileID string) (*models.Student, error)
	GetWithProfile(ctx context.Context, profileID string) (*models.Student, error)
	UpdateProfile(ctx context.Context, profileID string, req *dto.UpdateStudentProfileRequest) error
	SetDocumentURL(ctx context.Context, profileID, column, url string) error
}

// CompanyStore reads company rows
type CompanyStore interface {
	GetByProfileID(ctx context.Context, profileID string) (*models.Company, error)
	GetByID(ctx context.Context, id string) (*models.Company, error)
}

// AnalyticsSource reads the flat row projections the aggregation
// engine reduces
type AnalyticsSource interface {
	Profiles(ctx context.Context) ([]repositories.ProfileRow, error)
	Students(ctx context.Context) ([]repositories.StudentRow, error)
	Companies(ctx context.Context) ([]repositories.CompanyRow, error)
	Jobs(ctx context.Context) ([]repositories.JobRow, error)
	Applications(ctx context.Context) ([]repositories.ApplicationRow, error)
	Placements(ctx context.Context) ([]repositories.PlacementRow, error)
}

// Services holds all the service instances
type Services struct {
	Auth         *AuthService
	Approval     *ApprovalService
	Analytics    *AnalyticsService
	Job          *JobService
	Notification *NotificationService
	Student      *StudentService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	identityStore identity.Store,
	jwtService *auth.JWTService,
	emailSender email.Sender,
	logger zerolog.Logger,
) *Services {
	return &Services{
		Auth:         NewAuthService(identityStore, repos.ProfileRepository, repos.RoleRecords, jwtService, emailSender, logger),
		Approval:     NewApprovalService(repos.ProfileRepository, repos.NotificationRepository, logger),
		Analytics:    NewAnalyticsService(repos.AnalyticsRepository, logger),
		Job:          NewJobService(repos.JobRepository, repos.ApplicationRepository, repos.CompanyRepository, repos.StudentRepository, logger),
		Notification: NewNotificationService(repos.NotificationRepository, logger),
		Student:      NewStudentService(repos.StudentRepository, repos.ProfileRepository, logger),
	}
}
