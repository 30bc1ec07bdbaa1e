package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/pkg/apperrors"
	"github.com/placemate/placemate/internal/pkg/auth"
	"github.com/placemate/placemate/internal/pkg/email"
	"github.com/placemate/placemate/internal/pkg/identity"
)

// AuthService handles registration, sign-in and email verification.
// Registration spans two stores with no shared transaction, so each
// step carries an explicit compensating action.
type AuthService struct {
	identityStore identity.Store
	profileRepo   ProfileStore
	roleRecords   RoleRecordStore
	jwtService    *auth.JWTService
	emailSender   email.Sender
	logger        zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	identityStore identity.Store,
	profileRepo ProfileStore,
	roleRecords RoleRecordStore,
	jwtService *auth.JWTService,
	emailSender email.Sender,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		identityStore: identityStore,
		profileRepo:   profileRepo,
		roleRecords:   roleRecords,
		jwtService:    jwtService,
		emailSender:   emailSender,
		logger:        logger,
	}
}

// upstreamError classifies an identity store failure, keeping deadline
// expiry distinct from other failures
func upstreamError(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewCustomError(apperrors.ErrUpstreamTimeout, message)
	}
	return apperrors.NewCustomError(apperrors.ErrUpstreamFailure, message)
}

// validateRoleFields checks the role-specific required fields that the
// binding layer leaves optional
func validateRoleFields(req *dto.RegisterRequest) error {
	missing := map[string]interface{}{}

	switch req.Role {
	case models.RoleStudent:
		if req.RollNumber == "" {
			missing["rollNumber"] = "roll number is required for students"
		}
		if req.Branch == "" {
			missing["branch"] = "branch is required for students"
		}
		if req.Year < 1 {
			missing["year"] = "year is required for students"
		}
	case models.RoleFaculty:
		if req.EmployeeID == "" {
			missing["employeeId"] = "employee ID is required for faculty"
		}
		if req.Department == "" {
			missing["department"] = "department is required for faculty"
		}
	case models.RoleCompany:
		if req.CompanyName == "" {
			missing["companyName"] = "company name is required for companies"
		}
		if req.Industry == "" {
			missing["industry"] = "industry is required for companies"
		}
	}

	if len(missing) > 0 {
		return apperrors.NewValidationError("missing role-specific fields", missing)
	}
	return nil
}

// buildRoleRecord assembles the role-specific extension row from the
// registration request. Unsupplied fields fall back to zero values.
func buildRoleRecord(req *dto.RegisterRequest, profileID string) models.RoleRecord {
	switch req.Role {
	case models.RoleStudent:
		return &models.Student{
			ProfileID:  profileID,
			RollNumber: req.RollNumber,
			Branch:     req.Branch,
			Year:       req.Year,
			Phone:      req.Phone,
		}
	case models.RoleFaculty:
		return &models.Faculty{
			ProfileID:  profileID,
			EmployeeID: req.EmployeeID,
			Department: req.Department,
			Phone:      req.Phone,
		}
	case models.RoleCompany:
		return &models.Company{
			ProfileID:     profileID,
			CompanyName:   req.CompanyName,
			Industry:      req.Industry,
			ContactPerson: req.ContactPerson,
			Phone:         req.Phone,
		}
	}
	return nil
}

// Register provisions an account across the identity store and the
// relational store. Steps run sequentially; a failed step unwinds the
// earlier ones so a retry with the same email starts clean.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if !req.Role.SelfRegisterable() {
		return nil, apperrors.NewValidationError("invalid role", map[string]interface{}{
			"role": "role must be one of student, faculty, company",
		})
	}
	if err := validateRoleFields(req); err != nil {
		return nil, err
	}

	// Step 1: identity credential
	account, err := s.identityStore.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Identity account creation failed")
		return nil, upstreamError(err, "could not create account")
	}

	// Step 2: profile row, compensated by an account delete on failure
	profile := &models.Profile{
		ID:           account.ID,
		Email:        req.Email,
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ReviewStatus: models.ReviewPending,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		s.logger.Error().Err(err).Str("accountId", account.ID).Msg("Profile creation failed, rolling back identity account")
		if delErr := s.identityStore.DeleteAccount(ctx, account.ID); delErr != nil {
			s.logger.Error().Err(delErr).Str("accountId", account.ID).Msg("Compensating account delete failed, orphaned credential remains")
		}
		return nil, apperrors.NewCustomError(apperrors.ErrProfileCreationFailed, "could not create user profile")
	}

	// Step 3: role record, compensated by profile + account deletes
	record := buildRoleRecord(req, profile.ID)
	if err := s.roleRecords.Create(ctx, record); err != nil {
		s.logger.Error().Err(err).Str("profileId", profile.ID).Str("role", string(req.Role)).Msg("Role record creation failed, rolling back profile and account")
		if delErr := s.profileRepo.Delete(ctx, profile.ID); delErr != nil {
			s.logger.Error().Err(delErr).Str("profileId", profile.ID).Msg("Compensating profile delete failed")
		}
		if delErr := s.identityStore.DeleteAccount(ctx, account.ID); delErr != nil {
			s.logger.Error().Err(delErr).Str("accountId", account.ID).Msg("Compensating account delete failed, orphaned credential remains")
		}
		return nil, apperrors.NewCustomError(apperrors.ErrRoleRecordCreationFailed, "could not create role record")
	}

	// Verification email is best effort; registration already succeeded
	token, err := s.identityStore.CreateVerificationToken(ctx, account.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("accountId", account.ID).Msg("Could not issue verification token")
	} else if err := s.emailSender.SendVerificationEmail(req.Email, profile.FullName(), token); err != nil {
		s.logger.Warn().Err(err).Str("email", req.Email).Msg("Could not send verification email")
	}

	return &dto.RegisterResponse{
		ID:      profile.ID,
		Email:   profile.Email,
		Role:    profile.Role,
		Message: "Registration successful. Please verify your email, then wait for approval before signing in.",
	}, nil
}

// SignIn authenticates credentials and gates access on email
// verification and the profile's review status. Admins bypass the
// approval gate.
func (s *AuthService) SignIn(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := s.identityStore.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			return nil, apperrors.ErrInvalidCredentials
		case errors.Is(err, identity.ErrEmailNotVerified):
			return nil, apperrors.ErrEmailNotVerified
		default:
			s.logger.Error().Err(err).Str("email", req.Email).Msg("Identity authentication failed")
			return nil, upstreamError(err, "could not authenticate")
		}
	}

	profile, err := s.profileRepo.GetByID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	if !profile.IsApproved() {
		return nil, apperrors.ErrPendingApproval
	}

	// Role data is informational on the login payload; a missing row is
	// logged but does not block the session.
	var roleData interface{}
	record, err := s.roleRecords.FetchByProfileID(ctx, profile.Role, profile.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("profileId", profile.ID).Msg("Could not load role record for login payload")
	} else if record != nil {
		roleData = record
	}

	token, expiresIn, err := s.jwtService.GenerateSessionToken(profile)
	if err != nil {
		s.logger.Error().Err(err).Str("profileId", profile.ID).Msg("Session token generation failed")
		return nil, apperrors.NewCustomError(err, "could not create session")
	}

	return &dto.LoginResponse{
		User: dto.UserResponse{
			ID:         profile.ID,
			Email:      profile.Email,
			Role:       profile.Role,
			FirstName:  profile.FirstName,
			LastName:   profile.LastName,
			IsApproved: profile.IsApproved(),
			RoleData:   roleData,
		},
		Session: dto.SessionResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
	}, nil
}

// VerifyEmail consumes a verification token
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if err := s.identityStore.VerifyEmail(ctx, token); err != nil {
		if errors.Is(err, identity.ErrTokenInvalid) {
			return apperrors.ErrTokenInvalid
		}
		s.logger.Error().Err(err).Msg("Email verification failed")
		return upstreamError(err, "could not verify email")
	}
	return nil
}
